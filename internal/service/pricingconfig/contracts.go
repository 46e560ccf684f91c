package pricingconfig

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// ConfigRepository интерфейс репозитория конфигураций ценообразования
type ConfigRepository interface {
	GetByHall(ctx context.Context, hallID int64) (*domain.PricingConfig, error)
	Upsert(ctx context.Context, config *domain.PricingConfig) (*domain.PricingConfig, error)
	Delete(ctx context.Context, hallID int64) error
}

// HallServiceClient интерфейс клиента сервиса управления залами
type HallServiceClient interface {
	GetHall(ctx context.Context, hallID int64) (*hallservice.Hall, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
