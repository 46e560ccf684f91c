package get_hall_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/service/bookings"
	"github.com/avask/HMS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidHallID   = "некорректный ID зала"
	msgInvalidSections = "некорректный список секций"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgHallNotFound    = "зал не найден"
	msgForbidden       = "доступ запрещен"
	msgInvalidData     = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/bookings?sectionIds=1,2&startDate=...&endDate=...&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /halls/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := buildRequest(r, hallID, userID)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetHallBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/bookings - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /halls/{id}/bookings - Access denied: hall_id=%d, user_id=%d", hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/bookings - Invalid data: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /halls/{id}/bookings - Failed to get bookings: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/bookings - Bookings retrieved successfully: hall_id=%d, count=%d",
		hallID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// buildRequest собирает запрос сервиса из query параметров
func buildRequest(r *http.Request, hallID, userID int64) (*models.GetHallBookingsRequest, error) {
	req := &models.GetHallBookingsRequest{
		UserID: userID,
		HallID: hallID,
	}

	query := r.URL.Query()

	if raw := query.Get("sectionIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, errors.New(msgInvalidSections)
			}
			req.SectionIDs = append(req.SectionIDs, id)
		}
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, errors.New(msgInvalidDate)
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
