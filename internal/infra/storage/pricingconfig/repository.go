package pricingconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/pkg/dbmetrics"
	"github.com/avask/HMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий конфигураций ценообразования залов.
// Расписания, спец-периоды и событийные конфигурации хранятся одним
/// JSONB-документом на зал: движок всегда читает конфигурацию целиком,
// а редактирует её один администратор, поэтому нормализация не нужна.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// pricingPayload JSONB-содержимое строки конфигурации
type pricingPayload struct {
	UniformRate    *domain.SlotRate            `json:"uniformRate,omitempty"`
	WeeklySchedule *domain.WeeklySchedule      `json:"weeklySchedule,omitempty"`
	SpecialPeriods []domain.SpecialPeriod      `json:"specialPeriods,omitempty"`
	EventOverrides []domain.EventPriceOverride `json:"eventOverrides,omitempty"`
}

// GetByHall получает конфигурацию ценообразования зала
func (r *Repository) GetByHall(ctx context.Context, hallID int64) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"hall_id",
		"pricing_mode",
		"calculation_mode",
		"insurance_amount",
		"pricing",
		"created_at",
		"updated_at",
	).
		From("hall_pricing_configs").
		Where(squirrel.Eq{"hall_id": hallID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHall - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.PricingConfig
	var payloadJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.HallID,
		&config.PricingMode,
		&config.CalculationMode,
		&config.InsuranceAmount,
		&payloadJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHall - scan config: %v", ErrScanRow, err)
	}

	var payload pricingPayload
	if len(payloadJSON) > 0 {
		if err := json.Unmarshal(payloadJSON, &payload); err != nil {
			return nil, fmt.Errorf("%w: GetByHall - unmarshal pricing payload: %v", ErrScanRow, err)
		}
	}

	config.UniformRate = payload.UniformRate
	config.WeeklySchedule = payload.WeeklySchedule
	config.SpecialPeriods = payload.SpecialPeriods
	config.EventOverrides = payload.EventOverrides
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или заменяет конфигурацию ценообразования зала
func (r *Repository) Upsert(ctx context.Context, config *domain.PricingConfig) (*domain.PricingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payloadJSON, err := json.Marshal(pricingPayload{
		UniformRate:    config.UniformRate,
		WeeklySchedule: config.WeeklySchedule,
		SpecialPeriods: config.SpecialPeriods,
		EventOverrides: config.EventOverrides,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal pricing payload: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("hall_pricing_configs").
		Columns(
			"hall_id",
			"pricing_mode",
			"calculation_mode",
			"insurance_amount",
			"pricing",
		).
		Values(
			config.HallID,
			config.PricingMode,
			config.CalculationMode,
			config.InsuranceAmount,
			payloadJSON,
		).
		Suffix(`ON CONFLICT (hall_id) DO UPDATE SET
			pricing_mode = EXCLUDED.pricing_mode,
			calculation_mode = EXCLUDED.calculation_mode,
			insurance_amount = EXCLUDED.insurance_amount,
			pricing = EXCLUDED.pricing,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию ценообразования зала
func (r *Repository) Delete(ctx context.Context, hallID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hall_pricing_configs").
		Where(squirrel.Eq{"hall_id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
