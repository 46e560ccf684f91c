package quote_booking

import (
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса котировки
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if len(req.SectionIDs) == 0 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalidInput)
	}
	for _, sectionID := range req.SectionIDs {
		if sectionID <= 0 {
			return fmt.Errorf("%w: sectionID must be positive", ErrInvalidInput)
		}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if domain.DateOnly(req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if !domain.TimeSlot(req.TimeSlot).IsValid() {
		return fmt.Errorf("%w: invalid timeSlot", ErrInvalidInput)
	}

	if !domain.AttendeesType(req.AttendeesType).IsValid() {
		return fmt.Errorf("%w: invalid attendeesType", ErrInvalidInput)
	}

	if req.MaleAttendeesCount < 0 || req.FemaleAttendeesCount < 0 {
		return fmt.Errorf("%w: attendee counts must be >= 0", ErrInvalidInput)
	}
	if req.MaleAttendeesCount > domain.MaxAttendeesCount || req.FemaleAttendeesCount > domain.MaxAttendeesCount {
		return fmt.Errorf("%w: attendee count exceeds maximum", ErrInvalidInput)
	}

	if len(req.Services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services", ErrInvalidInput)
	}
	for _, svc := range req.Services {
		if svc.Price < 0 {
			return fmt.Errorf("%w: service price must be >= 0", ErrInvalidInput)
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

	if req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must be >= 0", ErrInvalidInput)
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

// toDiscountSelection конвертирует выбор скидки в domain модель
func toDiscountSelection(discount *DiscountInput) domain.DiscountSelection {
	if discount == nil {
		return domain.NoDiscount()
	}

	switch domain.DiscountKind(discount.Kind) {
	case domain.DiscountKindManual:
		return domain.ManualDiscount(domain.DiscountType(discount.Type), discount.Value)
	case domain.DiscountKindSpecial:
		return domain.SpecialDiscountRef(*discount.DiscountID)
	default:
		return domain.NoDiscount()
	}
}

// vatPercentOrDefault возвращает ставку НДС из запроса или значение по умолчанию
func vatPercentOrDefault(vatPercent *float64) float64 {
	if vatPercent == nil {
		return domain.DefaultVATPercent
	}
	return *vatPercent
}
