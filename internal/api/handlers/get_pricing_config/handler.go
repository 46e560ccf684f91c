package get_pricing_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	"github.com/avask/HMS-BookingService/internal/service/pricingconfig"
	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "конфигурация ценообразования не найдена"
	msgHallNotFound  = "зал не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service PricingConfigService
	logger  Logger
}

func NewHandler(service PricingConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/pricing-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/pricing-config - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /halls/{id}/pricing-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Get(r.Context(), &models.GetConfigRequest{
		UserID: userID,
		HallID: hallID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricingconfig.ErrConfigNotFound):
			h.logger.Warn("GET /halls/{id}/pricing-config - Config not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pricingconfig.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/pricing-config - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, pricingconfig.ErrAccessDenied):
			h.logger.Warn("GET /halls/{id}/pricing-config - Access denied: hall_id=%d, user_id=%d",
				hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /halls/{id}/pricing-config - Failed to get config: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/pricing-config - Config retrieved successfully: hall_id=%d", hallID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
