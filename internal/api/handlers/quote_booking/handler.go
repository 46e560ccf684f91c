package quote_booking

import (
	"errors"
	"net/http"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	quoteBooking "github.com/avask/HMS-BookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgConfigNotFound     = "конфигурация ценообразования не найдена"
	msgNoRateConfigured   = "для выбранной даты и слота не настроена ставка"
	msgDiscountNotFound   = "специальная скидка не найдена"
	msgDiscountInactive   = "специальная скидка недоступна"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrConfigNotFound):
			h.logger.Warn("POST /bookings/quote - Config not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, quoteBooking.ErrNoRateConfigured):
			h.logger.Warn("POST /bookings/quote - No rate configured: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRateConfigured)

		case errors.Is(err, quoteBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /bookings/quote - Discount not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, quoteBooking.ErrDiscountInactive):
			h.logger.Warn("POST /bookings/quote - Discount inactive: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgDiscountInactive)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid data: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote booking: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote calculated successfully: hall_id=%d, total=%.2f",
		result.HallID, result.TotalPayable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
