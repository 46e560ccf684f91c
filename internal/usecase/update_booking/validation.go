package update_booking

import (
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SectionIDs != nil {
		if len(req.SectionIDs) == 0 {
			return fmt.Errorf("%w: at least one section is required", ErrInvalidInput)
		}
		for _, sectionID := range req.SectionIDs {
			if sectionID <= 0 {
				return fmt.Errorf("%w: sectionID must be positive", ErrInvalidInput)
			}
		}
	}

	if req.TimeSlot != nil && !domain.TimeSlot(*req.TimeSlot).IsValid() {
		return fmt.Errorf("%w: invalid timeSlot", ErrInvalidInput)
	}

	if req.AttendeesType != nil && !domain.AttendeesType(*req.AttendeesType).IsValid() {
		return fmt.Errorf("%w: invalid attendeesType", ErrInvalidInput)
	}

	if req.MaleAttendeesCount != nil {
		if *req.MaleAttendeesCount < 0 || *req.MaleAttendeesCount > domain.MaxAttendeesCount {
			return fmt.Errorf("%w: invalid male attendees count", ErrInvalidInput)
		}
	}
	if req.FemaleAttendeesCount != nil {
		if *req.FemaleAttendeesCount < 0 || *req.FemaleAttendeesCount > domain.MaxAttendeesCount {
			return fmt.Errorf("%w: invalid female attendees count", ErrInvalidInput)
		}
	}

	if req.Services != nil {
		if len(*req.Services) > domain.MaxServicesPerBooking {
			return fmt.Errorf("%w: too many services", ErrInvalidInput)
		}
		for _, svc := range *req.Services {
			if svc.Price < 0 {
				return fmt.Errorf("%w: service price must be >= 0", ErrInvalidInput)
			}
		}
	}

	if err := validateDiscount(req.Discount); err != nil {
		return err
	}

	if req.VATPercent != nil {
		if *req.VATPercent < domain.MinVATPercent || *req.VATPercent > domain.MaxVATPercent {
			return fmt.Errorf("%w: vatPercent must be between %v and %v",
				ErrInvalidInput, domain.MinVATPercent, domain.MaxVATPercent)
		}
	}

	if req.PaidAmount != nil && *req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must be >= 0", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDiscount валидирует выбор скидки
func validateDiscount(discount *DiscountInput) error {
	if discount == nil {
		return nil
	}

	switch domain.DiscountKind(discount.Kind) {
	case domain.DiscountKindNone:
		return nil

	case domain.DiscountKindManual:
		if !domain.DiscountType(discount.Type).IsValid() {
			return fmt.Errorf("%w: invalid discount type", ErrInvalidInput)
		}
		if discount.Value < 0 {
			return fmt.Errorf("%w: discount value must be >= 0", ErrInvalidInput)
		}
		return nil

	case domain.DiscountKindSpecial:
		if discount.DiscountID == nil || *discount.DiscountID <= 0 {
			return fmt.Errorf("%w: discountId is required for special discount", ErrInvalidInput)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown discount kind", ErrInvalidInput)
	}
}

// validateSectionsExist проверяет, что все запрошенные секции принадлежат залу
func validateSectionsExist(hall *hallservice.Hall, sectionIDs []int64) error {
	for _, sectionID := range sectionIDs {
		if !hall.HasSection(sectionID) {
			return fmt.Errorf("%w: section id=%d", ErrSectionNotFound, sectionID)
		}
	}
	return nil
}

// applyChanges накладывает изменения запроса на копию бронирования.
// Возвращает true, если изменилось хотя бы одно ценообразующее поле.
func applyChanges(booking *domain.HallBooking, req *Request) bool {
	repriced := false

	if req.SectionIDs != nil && !sameSections(booking.SectionIDs, req.SectionIDs) {
		booking.SectionIDs = req.SectionIDs
		repriced = true
	}
	if req.StartDate != nil && !domain.DateOnly(*req.StartDate).Equal(domain.DateOnly(booking.StartDate)) {
		booking.StartDate = *req.StartDate
		repriced = true
	}
	if req.EndDate != nil && !domain.DateOnly(*req.EndDate).Equal(domain.DateOnly(booking.EndDate)) {
		booking.EndDate = *req.EndDate
		repriced = true
	}
	if req.TimeSlot != nil && domain.TimeSlot(*req.TimeSlot) != booking.TimeSlot {
		booking.TimeSlot = domain.TimeSlot(*req.TimeSlot)
		repriced = true
	}
	if req.EventTypeID != nil && !sameEventType(booking.EventTypeID, req.EventTypeID) {
		booking.EventTypeID = req.EventTypeID
		repriced = true
	}
	if req.AttendeesType != nil && domain.AttendeesType(*req.AttendeesType) != booking.AttendeesType {
		booking.AttendeesType = domain.AttendeesType(*req.AttendeesType)
		repriced = true
	}
	if req.MaleAttendeesCount != nil && *req.MaleAttendeesCount != booking.MaleAttendeesCount {
		booking.MaleAttendeesCount = *req.MaleAttendeesCount
		repriced = true
	}
	if req.FemaleAttendeesCount != nil && *req.FemaleAttendeesCount != booking.FemaleAttendeesCount {
		booking.FemaleAttendeesCount = *req.FemaleAttendeesCount
		repriced = true
	}
	if req.Services != nil {
		booking.Services = *req.Services
		repriced = true
	}
	if req.Discount != nil {
		repriced = true
	}
	if req.VATPercent != nil && *req.VATPercent != booking.VATPercent {
		booking.VATPercent = *req.VATPercent
		repriced = true
	}

	// Неценообразующие поля
	if req.PaidAmount != nil {
		booking.PaidAmount = *req.PaidAmount
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	return repriced
}

// sameSections сравнивает наборы секций без учёта порядка
func sameSections(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int64]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

// sameEventType сравнивает указатели на тип мероприятия по значению
func sameEventType(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
