package get_hall_bookings

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetHallBookings(ctx context.Context, req *models.GetHallBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
