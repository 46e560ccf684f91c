package discount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/pkg/dbmetrics"
	"github.com/avask/HMS-BookingService/pkg/psqlbuilder"
)

// Repository справочник специальных скидок.
// Разрешает выбор kind=special в пару {type, value} перед расчётом стоимости.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр справочника скидок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает скидку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SpecialDiscount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"discount_type",
		"discount_value",
		"is_active",
	).
		From("special_discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.SpecialDiscount
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.Title,
		&d.Type,
		&d.Value,
		&d.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan discount: %v", ErrScanRow, err)
	}

	return &d, nil
}

// GetActive получает список активных скидок
func (r *Repository) GetActive(ctx context.Context) ([]*domain.SpecialDiscount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"discount_type",
		"discount_value",
		"is_active",
	).
		From("special_discounts").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	discounts := make([]*domain.SpecialDiscount, 0)
	for rows.Next() {
		var d domain.SpecialDiscount
		if err := rows.Scan(&d.ID, &d.Title, &d.Type, &d.Value, &d.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan discount: %v", ErrScanRow, err)
		}
		discounts = append(discounts, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return discounts, nil
}
