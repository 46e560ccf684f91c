package update_pricing_config

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

type PricingConfigService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
