package update_booking

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// DiscountInput выбор скидки в запросе на редактирование
type DiscountInput struct {
	Kind       string   // none | manual | special
	Type       string   // percent | fixed (только для manual)
	Value      float64  // значение скидки (только для manual)
	DiscountID *int64   // ID специальной скидки (только для special)
}

// Request модель запроса на редактирование бронирования.
// Nil-поля означают "оставить как есть"; изменение любого ценообразующего
// поля вызывает пересчёт стоимости.
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя (клиент или менеджер зала)

	SectionIDs           []int64                 // Новые секции (опционально)
	StartDate            *time.Time              // Новая дата начала (опционально)
	EndDate              *time.Time              // Новая дата окончания (опционально)
	TimeSlot             *string                 // Новый слот (опционально)
	EventTypeID          *int64                  // Новый тип мероприятия (опционально)
	AttendeesType        *string                 // Новый состав гостей (опционально)
	MaleAttendeesCount   *int                    // Новое количество мужчин (опционально)
	FemaleAttendeesCount *int                    // Новое количество женщин (опционально)
	Services             *[]domain.ServiceCharge // Новый список услуг (опционально)
	Discount             *DiscountInput          // Новый выбор скидки (опционально)
	VATPercent           *float64                // Новая ставка НДС (опционально)
	PaidAmount           *float64                // Новая внесённая сумма (опционально)
	Notes                *string                 // Новые заметки (опционально)

	// ResetPrice подтверждает пересчёт: без него расхождение сохранённого
	// итога со свежерассчитанным отклоняется
	ResetPrice bool
}

// PriceMismatch детали расхождения цены для ответа клиенту
type PriceMismatch struct {
	StoredTotal   float64 // Сохранённый итог
	ComputedTotal float64 // Пересчитанный итог
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID         int64   // ID бронирования
	HallID     int64   // ID зала
	SectionIDs []int64 // Секции зала
	CustomerID int64   // ID клиента

	EventTypeID          *int64                 // Тип мероприятия
	StartDate            string                 // Дата начала "2025-10-15"
	EndDate              string                 // Дата окончания
	TimeSlot             string                 // Слот бронирования
	AttendeesType        string                 // Состав гостей
	MaleAttendeesCount   int                    // Количество мужчин
	FemaleAttendeesCount int                    // Количество женщин
	Services             []domain.ServiceCharge // Дополнительные услуги

	// Снимок денежной раскладки
	DiscountType        *string  // percent | fixed
	DiscountValue       *float64 // Значение скидки
	VATPercent          float64  // Применённая ставка НДС
	Subtotal            float64  // Базовая стоимость
	DiscountAmount      float64  // Сумма скидки
	AmountAfterDiscount float64  // Сумма после скидки
	VATAmount           float64  // Сумма НДС
	InsuranceAmount     float64  // Страховой депозит
	TotalPayable        float64  // Итого к оплате
	PaidAmount          float64  // Внесённая сумма
	RemainingAmount     float64  // Остаток к оплате

	Status string  // Статус бронирования
	Notes  *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
