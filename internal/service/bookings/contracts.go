package bookings

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HallBooking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.HallBooking, error)
	GetByHallWithFilter(ctx context.Context, filter domain.HallBookingsFilter) ([]*domain.HallBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
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
