package delete_pricing_config

import (
	"context"

	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

type PricingConfigService interface {
	Delete(ctx context.Context, req *models.DeleteConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
