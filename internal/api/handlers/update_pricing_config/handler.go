package update_pricing_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
	"github.com/avask/HMS-BookingService/internal/api/middleware"
	"github.com/avask/HMS-BookingService/internal/service/pricingconfig"
)

const (
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHallNotFound       = "зал не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/halls/{hallId}/pricing-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /halls/{id}/pricing-config - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /halls/{id}/pricing-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePricingConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /halls/{id}/pricing-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сохраняем конфигурацию (сервис сам проверит права менеджера и валидность)
	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(hallID, userID))
	if err != nil {
		switch {
		case errors.Is(err, pricingconfig.ErrHallNotFound):
			h.logger.Warn("PUT /halls/{id}/pricing-config - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, pricingconfig.ErrAccessDenied):
			h.logger.Warn("PUT /halls/{id}/pricing-config - Access denied: hall_id=%d, user_id=%d",
				hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, pricingconfig.ErrInvalidInput):
			h.logger.Warn("PUT /halls/{id}/pricing-config - Invalid data: hall_id=%d, error=%v", hallID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /halls/{id}/pricing-config - Failed to save config: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /halls/{id}/pricing-config - Config saved successfully: hall_id=%d, mode=%s",
		hallID, result.PricingMode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
