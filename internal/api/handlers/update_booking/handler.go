package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	updateBooking "github.com/avask/HMS-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotUpdate       = "бронирование нельзя редактировать в текущем статусе"
	msgHallNotFound       = "зал не найден"
	msgSectionNotFound    = "секция не найдена в зале"
	msgConfigNotFound     = "конфигурация ценообразования не найдена"
	msgNoRateConfigured   = "для выбранной даты и слота не настроена ставка"
	msgDiscountNotFound   = "специальная скидка не найдена"
	msgDiscountInactive   = "специальная скидка недоступна"
	msgSectionsOccupied   = "выбранные секции заняты подтверждённой бронью"
	msgPriceMismatch      = "итоговая стоимость изменилась, подтвердите пересчёт флагом resetPrice"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrCannotUpdate):
			h.logger.Warn("PATCH /bookings/{id} - Cannot update: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, updateBooking.ErrPriceMismatch):
			h.logger.Warn("PATCH /bookings/{id} - Price mismatch: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgPriceMismatch)

		case errors.Is(err, updateBooking.ErrSectionsOccupied):
			h.logger.Warn("PATCH /bookings/{id} - Sections occupied: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSectionsOccupied)

		case errors.Is(err, updateBooking.ErrHallNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Hall not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, updateBooking.ErrSectionNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Section not found: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondNotFound(w, msgSectionNotFound)

		case errors.Is(err, updateBooking.ErrConfigNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Config not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, updateBooking.ErrNoRateConfigured):
			h.logger.Warn("PATCH /bookings/{id} - No rate configured: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRateConfigured)

		case errors.Is(err, updateBooking.ErrDiscountNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Discount not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, updateBooking.ErrDiscountInactive):
			h.logger.Warn("PATCH /bookings/{id} - Discount inactive: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgDiscountInactive)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid data: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
