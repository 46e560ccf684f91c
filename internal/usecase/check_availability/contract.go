package check_availability

import (
	"context"
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/integrations/hallservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetIntervalsForWindow(ctx context.Context, hallID int64, startDate, endDate time.Time) ([]domain.BookingInterval, error)
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
