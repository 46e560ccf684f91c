package quote_booking

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// DiscountInput выбор скидки в запросе котировки
type DiscountInput struct {
	Kind       string   // none | manual | special
	Type       string   // percent | fixed (только для manual)
	Value      float64  // значение скидки (только для manual)
	DiscountID *int64   // ID специальной скидки (только для special)
}

// Request модель запроса на расчёт стоимости бронирования
type Request struct {
	HallID               int64                  // ID зала
	SectionIDs           []int64                // Секции зала
	StartDate            time.Time              // Дата начала (без времени)
	EndDate              time.Time              // Дата окончания (без времени)
	TimeSlot             string                 // morning | evening | full_day
	EventTypeID          *int64                 // Тип мероприятия (для режима event)
	AttendeesType        string                 // men | women | men_and_women
	MaleAttendeesCount   int                    // Количество мужчин
	FemaleAttendeesCount int                    // Количество женщин
	Services             []domain.ServiceCharge // Дополнительные услуги
	Discount             *DiscountInput         // Выбор скидки (опционально)
	VATPercent           *float64               // Ставка НДС (опционально, по умолчанию 15)
	PaidAmount           float64                // Уже внесённая сумма
}

// Response модель ответа с денежной раскладкой
type Response struct {
	HallID     int64   // ID зала
	StartDate  string  // Дата начала "2025-10-15"
	EndDate    string  // Дата окончания
	TimeSlot   string  // Слот бронирования
	VATPercent float64 // Применённая ставка НДС

	// Применённая скидка
	DiscountType  *string  // percent | fixed
	DiscountValue *float64 // Значение скидки
	DiscountID    *int64   // ID специальной скидки (если применялась)

	// Денежная раскладка
	Subtotal            float64 // Базовая стоимость
	DiscountAmount      float64 // Сумма скидки
	AmountAfterDiscount float64 // Сумма после скидки
	VATAmount           float64 // Сумма НДС
	InsuranceAmount     float64 // Страховой депозит
	TotalPayable        float64 // Итого к оплате
	PaidAmount          float64 // Внесённая сумма
	RemainingAmount     float64 // Остаток к оплате
}
