package check_availability

import (
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// validateRequest валидирует входные данные запроса занятости
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

	return nil
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
