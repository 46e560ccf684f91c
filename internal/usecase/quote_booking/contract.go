package quote_booking

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций ценообразования
type ConfigRepository interface {
	GetByHall(ctx context.Context, hallID int64) (*domain.PricingConfig, error)
}

// DiscountRepository интерфейс справочника специальных скидок
type DiscountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SpecialDiscount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
