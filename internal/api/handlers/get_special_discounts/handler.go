package get_special_discounts

import (
	"net/http"

	"github.com/avask/HMS-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog DiscountCatalog
	logger  Logger
}

func NewHandler(catalog DiscountCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.catalog.GetActive(r.Context())
	if err != nil {
		h.logger.Error("GET /discounts - Failed to get active discounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /discounts - Returned %d active discounts", len(discounts))
	handlers.RespondJSON(w, http.StatusOK, toResponse(discounts))
}
