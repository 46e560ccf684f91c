package create_booking

import (
	"context"
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.HallBooking) (*domain.HallBooking, error)
	GetByHallWithFilter(ctx context.Context, filter domain.HallBookingsFilter) ([]*domain.HallBooking, error)
}

// ConfigRepository интерфейс репозитория конфигураций ценообразования
type ConfigRepository interface {
	GetByHall(ctx context.Context, hallID int64) (*domain.PricingConfig, error)
}

// DiscountRepository интерфейс справочника специальных скидок
type DiscountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SpecialDiscount, error)
}

// HallServiceClient интерфейс клиента сервиса управления залами
type HallServiceClient interface {
	GetHall(ctx context.Context, hallID int64) (*hallservice.Hall, error)
	GetEventTypeWithGracefulDegradation(ctx context.Context, eventTypeID int64) (*hallservice.EventType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
