package models

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// Request модели

// GetConfigRequest запрос на получение конфигурации ценообразования
type GetConfigRequest struct {
	UserID int64 `json:"userId"`
	HallID int64 `json:"hallId"`
}

// UpsertConfigRequest запрос на создание или замену конфигурации ценообразования
type UpsertConfigRequest struct {
	UserID int64 `json:"userId"`
	HallID int64 `json:"hallId"`

	PricingMode     string                      `json:"pricingMode"`
	CalculationMode string                      `json:"calculationMode"`
	UniformRate     *domain.SlotRate            `json:"uniformRate,omitempty"`
	WeeklySchedule  *domain.WeeklySchedule      `json:"weeklySchedule,omitempty"`
	SpecialPeriods  []domain.SpecialPeriod      `json:"specialPeriods,omitempty"`
	InsuranceAmount float64                     `json:"insuranceAmount"`
	EventOverrides  []domain.EventPriceOverride `json:"eventOverrides,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertConfigRequest) ToDomain() *domain.PricingConfig {
	return &domain.PricingConfig{
		HallID:          r.HallID,
		PricingMode:     domain.PricingMode(r.PricingMode),
		CalculationMode: domain.CalculationMode(r.CalculationMode),
		UniformRate:     r.UniformRate,
		WeeklySchedule:  r.WeeklySchedule,
		SpecialPeriods:  r.SpecialPeriods,
		InsuranceAmount: r.InsuranceAmount,
		EventOverrides:  r.EventOverrides,
	}
}

// DeleteConfigRequest запрос на удаление конфигурации ценообразования
type DeleteConfigRequest struct {
	UserID int64 `json:"userId"`
	HallID int64 `json:"hallId"`
}

// Response модели

// ConfigResponse ответ с конфигурацией ценообразования зала
type ConfigResponse struct {
	HallID          int64                       `json:"hallId"`
	PricingMode     string                      `json:"pricingMode"`
	CalculationMode string                      `json:"calculationMode"`
	UniformRate     *domain.SlotRate            `json:"uniformRate,omitempty"`
	WeeklySchedule  *domain.WeeklySchedule      `json:"weeklySchedule,omitempty"`
	SpecialPeriods  []domain.SpecialPeriod      `json:"specialPeriods,omitempty"`
	InsuranceAmount float64                     `json:"insuranceAmount"`
	EventOverrides  []domain.EventPriceOverride `json:"eventOverrides,omitempty"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.PricingConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		HallID:          c.HallID,
		PricingMode:     string(c.PricingMode),
		CalculationMode: string(c.CalculationMode),
		UniformRate:     c.UniformRate,
		WeeklySchedule:  c.WeeklySchedule,
		SpecialPeriods:  c.SpecialPeriods,
		InsuranceAmount: c.InsuranceAmount,
		EventOverrides:  c.EventOverrides,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
