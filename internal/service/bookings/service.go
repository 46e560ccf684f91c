package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avask/HMS-BookingService/internal/domain"
	bookingRepo "github.com/avask/HMS-BookingService/internal/infra/storage/booking"
	hallClient "github.com/avask/HMS-BookingService/internal/integrations/hallservice"
	"github.com/avask/HMS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями залов
type Service struct {
	bookingRepo BookingRepository
	hallClient  HallServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	hallClient HallServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		hallClient:  hallClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - клиент видит только своё бронирование,
// менеджер зала видит все брони своего зала
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetHallBookings получает бронирования зала с гибкой фильтрацией
// Поддерживает фильтрацию по секциям, периоду, статусу и включению неактивных
// бронирований. Доступно только менеджерам зала.
func (s *Service) GetHallBookings(ctx context.Context, req *models.GetHallBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetHallBookings: fetching bookings for hall=%d, user=%d", req.HallID, req.UserID)
	if len(req.SectionIDs) > 0 {
		logMsg += fmt.Sprintf(", sections=%v", req.SectionIDs)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.HallID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetHallBookings: invalid filter for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByHallWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHallBookings: repository error for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: GetHallBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHallBookings: successfully fetched %d bookings for hall=%d", len(bookings), req.HallID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование (cancelled_by_customer)
// Менеджер может отменить любое бронирование зала (cancelled_by_manager)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	if booking.CustomerID == req.UserID {
		cancelStatus = domain.StatusCancelledByCustomer
	} else {
		if err := s.checkManagerAccess(ctx, booking.HallID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByManager
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только менеджерам зала
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер зала)
	if err := s.checkManagerAccess(ctx, booking.HallID, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.HallBooking, userID int64) error {
	if booking.CustomerID == userID {
		return nil
	}

	if err := s.checkManagerAccess(ctx, booking.HallID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером зала
func (s *Service) checkManagerAccess(ctx context.Context, hallID int64, userID int64) error {
	hall, err := s.hallClient.GetHall(ctx, hallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			s.logger.Warn("checkManagerAccess: hall id=%d not found", hallID)
			return ErrHallNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get hall id=%d: %v", hallID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get hall: %v", ErrInternal, err)
	}

	if !hall.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of hall=%d", userID, hallID)
		return ErrAccessDenied
	}

	return nil
}
