package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	discountRepo "github.com/avask/HMS-BookingService/internal/infra/storage/discount"
	configRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
	"github.com/avask/HMS-BookingService/internal/pricing"
	"github.com/avask/HMS-BookingService/pkg/ptr"
)

// UseCase use case для расчёта стоимости бронирования.
// Чистая котировка: читает конфигурацию и справочник скидок, ничего не пишет.
type UseCase struct {
	configRepo   ConfigRepository
	discountRepo DiscountRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	discountRepo DiscountRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// Execute выполняет расчёт стоимости бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: hall=%d, sections=%v, dates=%s..%s, slot=%s",
		req.HallID, req.SectionIDs,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию ценообразования зала
	config, err := uc.configRepo.GetByHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("QuoteBooking: pricing config for hall=%d not found", req.HallID)
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get pricing config for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// 3. Разрешаем выбор скидки (special -> {type, value} из справочника)
	selection, err := uc.resolveDiscount(ctx, toDiscountSelection(req.Discount))
	if err != nil {
		return nil, err
	}

	// 4. Разрешаем ставку для даты начала и слота
	rate, err := pricing.ResolveRate(config, req.StartDate, domain.TimeSlot(req.TimeSlot), req.EventTypeID)
	if err != nil {
		var noRateErr *domain.NoRateConfiguredError
		if errors.As(err, &noRateErr) {
			uc.logger.Warn("QuoteBooking: no rate configured: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNoRateConfigured, err)
		}
		uc.logger.Error("QuoteBooking: failed to resolve rate: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve rate: %v", ErrInternal, err)
	}

	// 5. Вычисляем денежную раскладку
	bookingReq := &domain.BookingRequest{
		HallID:               req.HallID,
		SectionIDs:           req.SectionIDs,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		TimeSlot:             domain.TimeSlot(req.TimeSlot),
		EventTypeID:          req.EventTypeID,
		AttendeesType:        domain.AttendeesType(req.AttendeesType),
		MaleAttendeesCount:   req.MaleAttendeesCount,
		FemaleAttendeesCount: req.FemaleAttendeesCount,
		Services:             req.Services,
		Discount:             selection,
		VATPercent:           vatPercentOrDefault(req.VATPercent),
		PaidAmount:           req.PaidAmount,
	}

	calcMode := pricing.EffectiveCalculationMode(config, req.EventTypeID)
	breakdown, err := pricing.Calculate(rate, calcMode, config.InsuranceAmount, bookingReq)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			uc.logger.Warn("QuoteBooking: calculation rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("QuoteBooking: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteBooking: hall=%d, subtotal=%.2f, total=%.2f",
		req.HallID, breakdown.Subtotal, breakdown.TotalPayable)

	return buildResponse(req, bookingReq, selection, breakdown), nil
}

// resolveDiscount разрешает выбор kind=special в пару {type, value}.
// Неактивная скидка отклоняется, чтобы котировка не обещала недействующую цену.
func (uc *UseCase) resolveDiscount(ctx context.Context, selection domain.DiscountSelection) (domain.DiscountSelection, error) {
	if selection.Kind != domain.DiscountKindSpecial {
		return selection, nil
	}

	discount, err := uc.discountRepo.GetByID(ctx, *selection.DiscountID)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			uc.logger.Warn("QuoteBooking: special discount id=%d not found", *selection.DiscountID)
			return selection, ErrDiscountNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get special discount id=%d: %v", *selection.DiscountID, err)
		return selection, fmt.Errorf("%w: failed to get special discount: %v", ErrInternal, err)
	}

	if !discount.IsActive {
		uc.logger.Warn("QuoteBooking: special discount id=%d is inactive", discount.ID)
		return selection, ErrDiscountInactive
	}

	selection.Type = discount.Type
	selection.Value = discount.Value
	return selection, nil
}

// buildResponse собирает ответ из запроса и рассчитанной раскладки
func buildResponse(
	req *Request,
	bookingReq *domain.BookingRequest,
	selection domain.DiscountSelection,
	breakdown domain.CostBreakdown,
) *Response {
	resp := &Response{
		HallID:              req.HallID,
		StartDate:           req.StartDate.Format(domain.DateFormat),
		EndDate:             req.EndDate.Format(domain.DateFormat),
		TimeSlot:            req.TimeSlot,
		VATPercent:          bookingReq.VATPercent,
		Subtotal:            breakdown.Subtotal,
		DiscountAmount:      breakdown.DiscountAmount,
		AmountAfterDiscount: breakdown.AmountAfterDiscount,
		VATAmount:           breakdown.VATAmount,
		InsuranceAmount:     breakdown.InsuranceAmount,
		TotalPayable:        breakdown.TotalPayable,
		PaidAmount:          req.PaidAmount,
		RemainingAmount:     breakdown.RemainingAmount,
	}

	if selection.Kind != domain.DiscountKindNone {
		resp.DiscountType = ptr.Ptr(string(selection.Type))
		resp.DiscountValue = ptr.Ptr(selection.Value)
		resp.DiscountID = selection.DiscountID
	}

	return resp
}
