package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	discountRepo "github.com/avask/HMS-BookingService/internal/infra/storage/discount"
	configRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
	hallClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	"github.com/avask/HMS-BookingService/internal/pricing"
	"github.com/avask/HMS-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	discountRepo DiscountRepository
	hallClient   HallServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	discountRepo DiscountRepository,
	hallClient HallServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		discountRepo: discountRepo,
		hallClient:   hallClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, hall=%d, sections=%v, dates=%s..%s, slot=%s",
		req.CustomerID, req.HallID, req.SectionIDs,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата начала не в прошлом
	if err := validateDate(req.StartDate, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем зал и проверяем секции
	hall, err := uc.hallClient.GetHall(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if err := validateSectionsExist(hall, req.SectionIDs); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Проверяем тип мероприятия, если он указан.
	// Недоступность сервиса залов не блокирует создание: ставка для режима
	// event всё равно разрешается по конфигурации зала
	if req.EventTypeID != nil {
		if _, err := uc.hallClient.GetEventTypeWithGracefulDegradation(ctx, *req.EventTypeID); err != nil {
			if errors.Is(err, hallClient.ErrEventTypeNotFound) {
				uc.logger.Warn("CreateBooking: event type id=%d not found", *req.EventTypeID)
				return nil, ErrEventTypeNotFound
			}
			if !errors.Is(err, hallClient.ErrServiceDegraded) {
				uc.logger.Error("CreateBooking: failed to get event type id=%d: %v", *req.EventTypeID, err)
				return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
			}
		}
	}

	// 5. Разрешаем выбор скидки
	selection, err := uc.resolveDiscount(ctx, toDiscountSelection(req.Discount))
	if err != nil {
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.HallBooking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем конфигурацию ценообразования
		config, err := uc.configRepo.GetByHall(txCtx, req.HallID)
		if err != nil {
			if errors.Is(err, configRepo.ErrConfigNotFound) {
				uc.logger.Warn("CreateBooking: pricing config for hall=%d not found", req.HallID)
				return ErrConfigNotFound
			}
			uc.logger.Error("CreateBooking: failed to get pricing config for hall=%d: %v", req.HallID, err)
			return fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
		}

		// 6.2. Получаем активные брони в окне дат с блокировкой (FOR UPDATE)
		filter := domain.HallBookingsFilter{
			HallID:    req.HallID,
			StartDate: &req.StartDate,
			EndDate:   &req.EndDate,
		}

		existing, err := uc.bookingRepo.GetByHallWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for hall=%d: %v", req.HallID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Подтверждённый конфликт по секциям и слоту блокирует создание
		candidate := domain.BookingInterval{
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TimeSlot:   domain.TimeSlot(req.TimeSlot),
			SectionIDs: req.SectionIDs,
		}
		if hasConfirmedConflict(candidate, existing) {
			uc.logger.Warn("CreateBooking: sections %v are occupied for hall=%d", req.SectionIDs, req.HallID)
			return ErrSectionsOccupied
		}

		// 6.4. Разрешаем ставку и считаем денежную раскладку
		bookingReq := uc.buildBookingRequest(req, selection)

		rate, err := pricing.ResolveRate(config, req.StartDate, domain.TimeSlot(req.TimeSlot), req.EventTypeID)
		if err != nil {
			var noRateErr *domain.NoRateConfiguredError
			if errors.As(err, &noRateErr) {
				uc.logger.Warn("CreateBooking: no rate configured: %v", err)
				return fmt.Errorf("%w: %v", ErrNoRateConfigured, err)
			}
			uc.logger.Error("CreateBooking: failed to resolve rate: %v", err)
			return fmt.Errorf("%w: failed to resolve rate: %v", ErrInternal, err)
		}

		calcMode := pricing.EffectiveCalculationMode(config, req.EventTypeID)
		breakdown, err := pricing.Calculate(rate, calcMode, config.InsuranceAmount, bookingReq)
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				uc.logger.Warn("CreateBooking: calculation rejected: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateBooking: calculation failed: %v", err)
			return fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
		}

		// 6.5. Создаем бронирование со снимком денежной раскладки
		status := domain.StatusTemporary
		if req.Confirmed {
			status = domain.StatusConfirmed
		}

		booking := uc.buildBooking(req, selection, bookingReq, breakdown, status)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s, total=%.2f",
		result.ID, result.Status, result.TotalPayable)

	return buildResponse(result), nil
}

// resolveDiscount разрешает выбор kind=special в пару {type, value}
func (uc *UseCase) resolveDiscount(ctx context.Context, selection domain.DiscountSelection) (domain.DiscountSelection, error) {
	if selection.Kind != domain.DiscountKindSpecial {
		return selection, nil
	}

	discount, err := uc.discountRepo.GetByID(ctx, *selection.DiscountID)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			uc.logger.Warn("CreateBooking: special discount id=%d not found", *selection.DiscountID)
			return selection, ErrDiscountNotFound
		}
		uc.logger.Error("CreateBooking: failed to get special discount id=%d: %v", *selection.DiscountID, err)
		return selection, fmt.Errorf("%w: failed to get special discount: %v", ErrInternal, err)
	}

	if !discount.IsActive {
		uc.logger.Warn("CreateBooking: special discount id=%d is inactive", discount.ID)
		return selection, ErrDiscountInactive
	}

	selection.Type = discount.Type
	selection.Value = discount.Value
	return selection, nil
}

// buildBookingRequest собирает входные данные расчёта стоимости
func (uc *UseCase) buildBookingRequest(req *Request, selection domain.DiscountSelection) *domain.BookingRequest {
	return &domain.BookingRequest{
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
}

// buildBooking собирает domain модель бронирования со снимком раскладки
func (uc *UseCase) buildBooking(
	req *Request,
	selection domain.DiscountSelection,
	bookingReq *domain.BookingRequest,
	breakdown domain.CostBreakdown,
	status domain.BookingStatus,
) *domain.HallBooking {
	booking := &domain.HallBooking{
		HallID:               req.HallID,
		SectionIDs:           req.SectionIDs,
		CustomerID:           req.CustomerID,
		EventTypeID:          req.EventTypeID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		TimeSlot:             domain.TimeSlot(req.TimeSlot),
		AttendeesType:        domain.AttendeesType(req.AttendeesType),
		MaleAttendeesCount:   req.MaleAttendeesCount,
		FemaleAttendeesCount: req.FemaleAttendeesCount,
		Services:             req.Services,
		VATPercent:           bookingReq.VATPercent,
		Subtotal:             breakdown.Subtotal,
		DiscountAmount:       breakdown.DiscountAmount,
		VATAmount:            breakdown.VATAmount,
		InsuranceAmount:      breakdown.InsuranceAmount,
		TotalPayable:         breakdown.TotalPayable,
		PaidAmount:           req.PaidAmount,
		Status:               status,
		Notes:                req.Notes,
	}

	if selection.Kind != domain.DiscountKindNone {
		booking.DiscountType = ptr.Ptr(selection.Type)
		booking.DiscountValue = ptr.Ptr(selection.Value)
	}

	return booking
}

// buildResponse конвертирует созданное бронирование в response
func buildResponse(b *domain.HallBooking) *Response {
	resp := &Response{
		ID:                   b.ID,
		HallID:               b.HallID,
		SectionIDs:           b.SectionIDs,
		CustomerID:           b.CustomerID,
		EventTypeID:          b.EventTypeID,
		StartDate:            b.StartDate.Format(domain.DateFormat),
		EndDate:              b.EndDate.Format(domain.DateFormat),
		TimeSlot:             string(b.TimeSlot),
		AttendeesType:        string(b.AttendeesType),
		MaleAttendeesCount:   b.MaleAttendeesCount,
		FemaleAttendeesCount: b.FemaleAttendeesCount,
		Services:             b.Services,
		DiscountValue:        b.DiscountValue,
		VATPercent:           b.VATPercent,
		Subtotal:             b.Subtotal,
		DiscountAmount:       b.DiscountAmount,
		AmountAfterDiscount:  b.Subtotal - b.DiscountAmount,
		VATAmount:            b.VATAmount,
		InsuranceAmount:      b.InsuranceAmount,
		TotalPayable:         b.TotalPayable,
		PaidAmount:           b.PaidAmount,
		RemainingAmount:      b.RemainingAmount(),
		Status:               string(b.Status),
		Notes:                b.Notes,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.DiscountType != nil {
		resp.DiscountType = ptr.Ptr(string(*b.DiscountType))
	}

	return resp
}
