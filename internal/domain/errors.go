package domain

import "fmt"

// ValidationError ошибка целостности конфигурации ценообразования.
// Возвращается при сохранении или чтении некорректных данных (пропущенный день
// недели, смешанная форма ставки). Исправляется администратором зала.
type ValidationError struct {
	HallID int64
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.HallID > 0 {
		return fmt.Sprintf("pricing config validation failed: hall=%d field=%s: %s", e.HallID, e.Field, e.Reason)
	}
	return fmt.Sprintf("pricing config validation failed: field=%s: %s", e.Field, e.Reason)
}

// NoRateConfiguredError возвращается, когда запрос бронирования не покрыт ни
// одним правилом ценообразования. Это ошибка конфигурационных данных, а не
// пользовательского ввода; нулевой тариф вместо неё не подставляется.
type NoRateConfiguredError struct {
	HallID      int64
	Date        string // YYYY-MM-DD
	Slot        TimeSlot
	EventTypeID *int64
}

func (e *NoRateConfiguredError) Error() string {
	if e.EventTypeID != nil {
		return fmt.Sprintf("no rate configured: hall=%d date=%s slot=%s event=%d", e.HallID, e.Date, e.Slot, *e.EventTypeID)
	}
	return fmt.Sprintf("no rate configured: hall=%d date=%s slot=%s", e.HallID, e.Date, e.Slot)
}

// PriceMismatchError возвращается при нарушении правила согласованности цены:
// у подтверждённого бронирования изменились ценообразующие поля, а сохранённая
// сумма больше не совпадает со свежерассчитанной. Требует явного подтверждения
// пересчёта со стороны вызывающего.
type PriceMismatchError struct {
	BookingID     int64
	StoredTotal   float64
	ComputedTotal float64
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("price mismatch: booking=%d stored=%.2f computed=%.2f", e.BookingID, e.StoredTotal, e.ComputedTotal)
}
