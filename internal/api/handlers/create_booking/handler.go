package create_booking

import (
	"errors"
	"net/http"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	createBooking "github.com/avask/HMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHallNotFound       = "зал не найден"
	msgSectionNotFound    = "секция не найдена в зале"
	msgEventTypeNotFound  = "тип мероприятия не найден"
	msgConfigNotFound     = "конфигурация ценообразования не найдена"
	msgNoRateConfigured   = "для выбранной даты и слота не настроена ставка"
	msgDiscountNotFound   = "специальная скидка не найдена"
	msgDiscountInactive   = "специальная скидка недоступна"
	msgSectionsOccupied   = "выбранные секции заняты подтверждённой бронью"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSectionsOccupied):
			h.logger.Warn("POST /bookings - Sections occupied: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondError(w, http.StatusConflict, msgSectionsOccupied)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrSectionNotFound):
			h.logger.Warn("POST /bookings - Section not found: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondNotFound(w, msgSectionNotFound)

		case errors.Is(err, createBooking.ErrEventTypeNotFound):
			h.logger.Warn("POST /bookings - Event type not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, createBooking.ErrConfigNotFound):
			h.logger.Warn("POST /bookings - Config not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, createBooking.ErrNoRateConfigured):
			h.logger.Warn("POST /bookings - No rate configured: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRateConfigured)

		case errors.Is(err, createBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /bookings - Discount not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, createBooking.ErrDiscountInactive):
			h.logger.Warn("POST /bookings - Discount inactive: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgDiscountInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, hall_id=%d", userID, req.HallID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: user_id=%d, hall_id=%d, error=%v", userID, req.HallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, hall_id=%d, error=%v",
				userID, req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, hall_id=%d",
		result.ID, userID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
