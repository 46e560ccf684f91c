package get_pricing_config

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

type PricingConfigService interface {
	Get(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
