package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	bookingRepo "github.com/avask/HMS-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/avask/HMS-BookingService/internal/infra/storage/discount"
	configRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
	hallClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	"github.com/avask/HMS-BookingService/internal/pricing"
	"github.com/avask/HMS-BookingService/pkg/ptr"
)

// UseCase use case для редактирования бронирования.
// Изменение ценообразующих полей вызывает пересчёт; расхождение
// пересчитанного итога с сохранённым требует явного подтверждения
// флагом resetPrice.
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	discountRepo DiscountRepository
	hallClient   HallServiceClient
	txManager    TransactionManager
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
		logger:       logger,
	}
}

// Execute выполняет use case редактирования бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d, resetPrice=%v",
		req.BookingID, req.UserID, req.ResetPrice)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование без блокировки для проверок доступа
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем права доступа (владелец или менеджер зала)
	hall, err := uc.hallClient.GetHall(ctx, booking.HallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			uc.logger.Warn("UpdateBooking: hall id=%d not found", booking.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get hall id=%d: %v", booking.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.UserID && !hall.IsManager(req.UserID) {
		uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Проверяем новые секции, если они меняются
	if req.SectionIDs != nil {
		if err := validateSectionsExist(hall, req.SectionIDs); err != nil {
			uc.logger.Warn("UpdateBooking: %v", err)
			return nil, err
		}
	}

	// 5. Разрешаем новый выбор скидки, если он передан
	var newSelection *domain.DiscountSelection
	if req.Discount != nil {
		selection, err := uc.resolveDiscount(ctx, req.Discount)
		if err != nil {
			return nil, err
		}
		newSelection = &selection
	}

	// Переменная для хранения результата
	var result *domain.HallBooking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем бронирование с блокировкой (FOR UPDATE)
		current, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d cannot be updated, status=%s",
				req.BookingID, current.Status)
			return ErrCannotUpdate
		}

		// 6.2. Накладываем изменения на копию
		updated := *current
		repriced := applyChanges(&updated, req)

		if repriced {
			if err := uc.reprice(txCtx, current, &updated, newSelection, req.ResetPrice); err != nil {
				return err
			}
		}

		// 6.3. Сохраняем бронирование
		saved, err := uc.bookingRepo.Update(txCtx, &updated)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, total=%.2f",
		result.ID, result.TotalPayable)

	return buildResponse(result), nil
}

// reprice пересчитывает денежную раскладку после изменения ценообразующих
// полей и применяет правило согласованности цены
func (uc *UseCase) reprice(
	ctx context.Context,
	current *domain.HallBooking,
	updated *domain.HallBooking,
	newSelection *domain.DiscountSelection,
	resetPrice bool,
) error {
	// Конфигурация ценообразования зала
	config, err := uc.configRepo.GetByHall(ctx, updated.HallID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("UpdateBooking: pricing config for hall=%d not found", updated.HallID)
			return ErrConfigNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get pricing config for hall=%d: %v", updated.HallID, err)
		return fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// Подтверждённый конфликт по новым секциям, датам и слоту блокирует правку
	filter := domain.HallBookingsFilter{
		HallID:    updated.HallID,
		StartDate: &updated.StartDate,
		EndDate:   &updated.EndDate,
	}

	existing, err := uc.bookingRepo.GetByHallWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings for hall=%d: %v", updated.HallID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if uc.hasConfirmedConflict(updated, existing) {
		uc.logger.Warn("UpdateBooking: sections %v are occupied for hall=%d",
			updated.SectionIDs, updated.HallID)
		return ErrSectionsOccupied
	}

	// Действующий выбор скидки: новый из запроса или снимок из брони
	selection := storedSelection(current)
	if newSelection != nil {
		selection = *newSelection
	}

	// Свежая котировка
	rate, err := pricing.ResolveRate(config, updated.StartDate, updated.TimeSlot, updated.EventTypeID)
	if err != nil {
		var noRateErr *domain.NoRateConfiguredError
		if errors.As(err, &noRateErr) {
			uc.logger.Warn("UpdateBooking: no rate configured: %v", err)
			return fmt.Errorf("%w: %v", ErrNoRateConfigured, err)
		}
		uc.logger.Error("UpdateBooking: failed to resolve rate: %v", err)
		return fmt.Errorf("%w: failed to resolve rate: %v", ErrInternal, err)
	}

	bookingReq := &domain.BookingRequest{
		HallID:               updated.HallID,
		SectionIDs:           updated.SectionIDs,
		StartDate:            updated.StartDate,
		EndDate:              updated.EndDate,
		TimeSlot:             updated.TimeSlot,
		EventTypeID:          updated.EventTypeID,
		AttendeesType:        updated.AttendeesType,
		MaleAttendeesCount:   updated.MaleAttendeesCount,
		FemaleAttendeesCount: updated.FemaleAttendeesCount,
		Services:             updated.Services,
		Discount:             selection,
		VATPercent:           updated.VATPercent,
		PaidAmount:           updated.PaidAmount,
		ExistingBookingID:    &updated.ID,
	}

	calcMode := pricing.EffectiveCalculationMode(config, updated.EventTypeID)
	breakdown, err := pricing.Calculate(rate, calcMode, config.InsuranceAmount, bookingReq)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			uc.logger.Warn("UpdateBooking: calculation rejected: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("UpdateBooking: calculation failed: %v", err)
		return fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	// Правило согласованности цены: расхождение без resetPrice отклоняется
	if err := pricing.VerifyStoredTotal(current.ID, current.TotalPayable, breakdown.TotalPayable, resetPrice); err != nil {
		var mismatchErr *domain.PriceMismatchError
		if errors.As(err, &mismatchErr) {
			uc.logger.Warn("UpdateBooking: price mismatch for booking id=%d: stored=%.2f, computed=%.2f",
				current.ID, mismatchErr.StoredTotal, mismatchErr.ComputedTotal)
			return fmt.Errorf("%w: %v", ErrPriceMismatch, err)
		}
		return fmt.Errorf("%w: price verification failed: %v", ErrInternal, err)
	}

	// Обновляем снимок денежной раскладки
	updated.Subtotal = breakdown.Subtotal
	updated.DiscountAmount = breakdown.DiscountAmount
	updated.VATAmount = breakdown.VATAmount
	updated.InsuranceAmount = breakdown.InsuranceAmount
	updated.TotalPayable = breakdown.TotalPayable

	if selection.Kind == domain.DiscountKindNone {
		updated.DiscountType = nil
		updated.DiscountValue = nil
	} else {
		updated.DiscountType = ptr.Ptr(selection.Type)
		updated.DiscountValue = ptr.Ptr(selection.Value)
	}

	return nil
}

// getBooking получает бронирование; в транзакции строка блокируется (FOR UPDATE)
func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.HallBooking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// resolveDiscount разрешает выбор kind=special в пару {type, value}
func (uc *UseCase) resolveDiscount(ctx context.Context, discount *DiscountInput) (domain.DiscountSelection, error) {
	selection := toDiscountSelection(discount)
	if selection.Kind != domain.DiscountKindSpecial {
		return selection, nil
	}

	stored, err := uc.discountRepo.GetByID(ctx, *selection.DiscountID)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			uc.logger.Warn("UpdateBooking: special discount id=%d not found", *selection.DiscountID)
			return selection, ErrDiscountNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get special discount id=%d: %v", *selection.DiscountID, err)
		return selection, fmt.Errorf("%w: failed to get special discount: %v", ErrInternal, err)
	}

	if !stored.IsActive {
		uc.logger.Warn("UpdateBooking: special discount id=%d is inactive", stored.ID)
		return selection, ErrDiscountInactive
	}

	selection.Type = stored.Type
	selection.Value = stored.Value
	return selection, nil
}

// toDiscountSelection конвертирует выбор скидки в domain модель
func toDiscountSelection(discount *DiscountInput) domain.DiscountSelection {
	switch domain.DiscountKind(discount.Kind) {
	case domain.DiscountKindManual:
		return domain.ManualDiscount(domain.DiscountType(discount.Type), discount.Value)
	case domain.DiscountKindSpecial:
		return domain.SpecialDiscountRef(*discount.DiscountID)
	default:
		return domain.NoDiscount()
	}
}

// storedSelection восстанавливает выбор скидки из снимка бронирования
func storedSelection(booking *domain.HallBooking) domain.DiscountSelection {
	if booking.DiscountType == nil || booking.DiscountValue == nil {
		return domain.NoDiscount()
	}
	return domain.ManualDiscount(*booking.DiscountType, *booking.DiscountValue)
}

// buildResponse конвертирует обновлённое бронирование в response
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

// hasConfirmedConflict проверяет пересечение с подтверждёнными бронями,
// исключая саму редактируемую бронь
func (uc *UseCase) hasConfirmedConflict(updated *domain.HallBooking, existing []*domain.HallBooking) bool {
	candidate := updated.Interval()
	for _, other := range existing {
		if other.ID == updated.ID {
			continue
		}
		if !other.IsActive() || !other.IsConfirmed() {
			continue
		}
		if pricing.Conflicts(candidate, other.Interval()) {
			return true
		}
	}
	return false
}
