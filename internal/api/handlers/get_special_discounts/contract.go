package get_special_discounts

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/domain"
)

type DiscountCatalog interface {
	GetActive(ctx context.Context) ([]*domain.SpecialDiscount, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
