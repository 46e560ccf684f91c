package update_pricing_config

import (
	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/internal/service/pricingconfig/models"
)

// UpdatePricingConfigRequest HTTP request model.
// Конфигурация заменяется целиком, частичных обновлений нет.
type UpdatePricingConfigRequest struct {
	PricingMode     string                      `json:"pricingMode"`
	CalculationMode string                      `json:"calculationMode"`
	UniformRate     *domain.SlotRate            `json:"uniformRate,omitempty"`
	WeeklySchedule  *domain.WeeklySchedule      `json:"weeklySchedule,omitempty"`
	SpecialPeriods  []domain.SpecialPeriod      `json:"specialPeriods,omitempty"`
	InsuranceAmount float64                     `json:"insuranceAmount"`
	EventOverrides  []domain.EventPriceOverride `json:"eventOverrides,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePricingConfigRequest) ToServiceRequest(hallID, userID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:          userID,
		HallID:          hallID,
		PricingMode:     r.PricingMode,
		CalculationMode: r.CalculationMode,
		UniformRate:     r.UniformRate,
		WeeklySchedule:  r.WeeklySchedule,
		SpecialPeriods:  r.SpecialPeriods,
		InsuranceAmount: r.InsuranceAmount,
		EventOverrides:  r.EventOverrides,
	}
}
