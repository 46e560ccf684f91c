package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avask/HMS-BookingService/internal/domain"
	"github.com/avask/HMS-BookingService/pkg/dbmetrics"
	"github.com/avask/HMS-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"hall_id",
	"section_ids",
	"customer_id",
	"event_type_id",
	"start_date",
	"end_date",
	"time_slot",
	"attendees_type",
	"male_attendees_count",
	"female_attendees_count",
	"services",
	"discount_type",
	"discount_value",
	"vat_percent",
	"subtotal",
	"discount_amount",
	"vat_amount",
	"insurance_amount",
	"total_payable",
	"paid_amount",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её - это нужно
// при создании с проверкой занятости секций (FOR UPDATE + insert одним
// сериализуемым блоком, чтобы исключить гонку за слот).
func (r *Repository) Create(ctx context.Context, booking *domain.HallBooking) (*domain.HallBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := json.Marshal(booking.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("hall_bookings").
		Columns(
			"hall_id",
			"section_ids",
			"customer_id",
			"event_type_id",
			"start_date",
			"end_date",
			"time_slot",
			"attendees_type",
			"male_attendees_count",
			"female_attendees_count",
			"services",
			"discount_type",
			"discount_value",
			"vat_percent",
			"subtotal",
			"discount_amount",
			"vat_amount",
			"insurance_amount",
			"total_payable",
			"paid_amount",
			"status",
			"notes",
		).
		Values(
			booking.HallID,
			pq.Array(booking.SectionIDs),
			booking.CustomerID,
			booking.EventTypeID,
			booking.StartDate,
			booking.EndDate,
			booking.TimeSlot,
			booking.AttendeesType,
			booking.MaleAttendeesCount,
			booking.FemaleAttendeesCount,
			servicesJSON,
			booking.DiscountType,
			booking.DiscountValue,
			booking.VATPercent,
			booking.Subtotal,
			booking.DiscountAmount,
			booking.VATAmount,
			booking.InsuranceAmount,
			booking.TotalPayable,
			booking.PaidAmount,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HallBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("hall_bookings").
		Where(squirrel.Eq{"id": id})

	// При редактировании внутри транзакции строка блокируется
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByHallWithFilter получает бронирования зала с гибкой фильтрацией.
// Поддерживает фильтрацию по секциям (пересечение массивов), периоду
// (пересечение [start_date, end_date] с окном фильтра, границы включительно),
// статусу и включению неактивных бронирований.
func (r *Repository) GetByHallWithFilter(ctx context.Context, filter domain.HallBookingsFilter) ([]*domain.HallBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("hall_bookings").
		Where(squirrel.Eq{"hall_id": filter.HallID})

	// Фильтрация по секциям: хотя бы одна общая секция
	if len(filter.SectionIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Expr("section_ids && ?", pq.Array(filter.SectionIDs)))
	}

	// Пересечение с окном дат: бронь задевает окно, если начинается не позже
	// его конца и заканчивается не раньше его начала
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC, id ASC")

	// Внутри транзакции блокируем прочитанные строки - это путь создания
	// брони с проверкой занятости
	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHallWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHallWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetIntervalsForWindow получает интервалы занятости активных бронирований,
// пересекающихся с окном дат. Лёгкая проекция для проверки доступности.
func (r *Repository) GetIntervalsForWindow(ctx context.Context, hallID int64, startDate, endDate time.Time) ([]domain.BookingInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"start_date",
		"end_date",
		"time_slot",
		"section_ids",
		"status",
	).
		From("hall_bookings").
		Where(squirrel.Eq{"hall_id": hallID}).
		Where(squirrel.LtOrEq{"start_date": endDate}).
		Where(squirrel.GtOrEq{"end_date": startDate}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		OrderBy("start_date ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntervalsForWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntervalsForWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.BookingInterval, 0)
	for rows.Next() {
		var interval domain.BookingInterval
		var sectionIDs pq.Int64Array
		var status domain.BookingStatus

		if err := rows.Scan(
			&interval.BookingID,
			&interval.StartDate,
			&interval.EndDate,
			&interval.TimeSlot,
			&sectionIDs,
			&status,
		); err != nil {
			return nil, fmt.Errorf("%w: GetIntervalsForWindow - scan interval: %v", ErrScanRow, err)
		}

		interval.SectionIDs = sectionIDs
		interval.IsConfirmed = status == domain.StatusConfirmed || status == domain.StatusCompleted
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetIntervalsForWindow - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// GetByCustomerID получает список бронирований клиента
// Опционально фильтрует по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.HallBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("hall_bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_date DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update обновляет бронирование вместе со снимком денежной раскладки
func (r *Repository) Update(ctx context.Context, booking *domain.HallBooking) (*domain.HallBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := json.Marshal(booking.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal services: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Update("hall_bookings").
		Set("section_ids", pq.Array(booking.SectionIDs)).
		Set("event_type_id", booking.EventTypeID).
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("time_slot", booking.TimeSlot).
		Set("attendees_type", booking.AttendeesType).
		Set("male_attendees_count", booking.MaleAttendeesCount).
		Set("female_attendees_count", booking.FemaleAttendeesCount).
		Set("services", servicesJSON).
		Set("discount_type", booking.DiscountType).
		Set("discount_value", booking.DiscountValue).
		Set("vat_percent", booking.VATPercent).
		Set("subtotal", booking.Subtotal).
		Set("discount_amount", booking.DiscountAmount).
		Set("vat_amount", booking.VATAmount).
		Set("insurance_amount", booking.InsuranceAmount).
		Set("total_payable", booking.TotalPayable).
		Set("paid_amount", booking.PaidAmount).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.UpdatedAt = updatedAt.Time
	return booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hall_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hall_bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует строки результата в domain модели
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.HallBooking, error) {
	bookings := make([]*domain.HallBooking, 0)

	for rows.Next() {
		var booking domain.HallBooking
		var sectionIDs pq.Int64Array
		var servicesJSON []byte
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&booking.ID,
			&booking.HallID,
			&sectionIDs,
			&booking.CustomerID,
			&booking.EventTypeID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TimeSlot,
			&booking.AttendeesType,
			&booking.MaleAttendeesCount,
			&booking.FemaleAttendeesCount,
			&servicesJSON,
			&booking.DiscountType,
			&booking.DiscountValue,
			&booking.VATPercent,
			&booking.Subtotal,
			&booking.DiscountAmount,
			&booking.VATAmount,
			&booking.InsuranceAmount,
			&booking.TotalPayable,
			&booking.PaidAmount,
			&booking.Status,
			&booking.Notes,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}

		booking.SectionIDs = sectionIDs

		if len(servicesJSON) > 0 {
			if err := json.Unmarshal(servicesJSON, &booking.Services); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal services: %v", ErrScanRow, err)
			}
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
