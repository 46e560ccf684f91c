package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/domain"
	checkAvailability "github.com/avask/HMS-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidHallID   = "некорректный ID зала"
	msgInvalidSections = "некорректный список секций"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgHallNotFound    = "зал не найден"
	msgSectionNotFound = "секция не найдена в зале"
	msgInvalidData     = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability?sectionIds=1,2&startDate=2025-10-15&endDate=2025-10-16
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	sectionIDs, err := parseSectionIDs(r.URL.Query().Get("sectionIds"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid section IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSections)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		HallID:     hallID,
		SectionIDs: sectionIDs,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, checkAvailability.ErrSectionNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Section not found: hall_id=%d, error=%v", hallID, err)
			handlers.RespondNotFound(w, msgSectionNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid data: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed to check availability: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/availability - Availability checked successfully: hall_id=%d", hallID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseSectionIDs парсит список секций из query параметра "1,2,3"
func parseSectionIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, errors.New("sectionIds is required")
	}

	parts := strings.Split(raw, ",")
	sectionIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		sectionIDs = append(sectionIDs, id)
	}

	return sectionIDs, nil
}
