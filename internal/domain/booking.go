package domain

import "time"

// BookingStatus represents the status of a hall booking
type BookingStatus string

const (
	// StatusTemporary бронь удерживает секции до подтверждения оплаты
	StatusTemporary BookingStatus = "temporary"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"

	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByManager  BookingStatus = "cancelled_by_manager"
	// StatusExpired временная бронь, не подтверждённая в срок
	StatusExpired BookingStatus = "expired"
)

// AttendeesType represents the attendee composition of a booking
type AttendeesType string

const (
	AttendeesMen         AttendeesType = "men"
	AttendeesWomen       AttendeesType = "women"
	AttendeesMenAndWomen AttendeesType = "men_and_women"
)

// IsValid returns true if the attendees type is one of the known values
func (t AttendeesType) IsValid() bool {
	return t == AttendeesMen || t == AttendeesWomen || t == AttendeesMenAndWomen
}

// ServiceCharge дополнительная услуга, включаемая в стоимость бронирования
type ServiceCharge struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// HallBooking represents a hall booking in the system
type HallBooking struct {
	ID         int64
	HallID     int64
	SectionIDs []int64
	CustomerID int64

	EventTypeID          *int64
	StartDate            time.Time
	EndDate              time.Time
	TimeSlot             TimeSlot
	AttendeesType        AttendeesType
	MaleAttendeesCount   int
	FemaleAttendeesCount int
	Services             []ServiceCharge

	// Снимок денежной раскладки на момент создания/последнего пересчёта.
	// Хранится денормализованно, чтобы история не менялась при правке тарифов.
	DiscountType    *DiscountType
	DiscountValue   *float64
	VATPercent      float64
	Subtotal        float64
	DiscountAmount  float64
	VATAmount       float64
	InsuranceAmount float64
	TotalPayable    float64
	PaidAmount      float64

	Status BookingStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its hall sections
func (b *HallBooking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByManager &&
		b.Status != StatusExpired
}

// IsConfirmed returns true if the booking is a confirmed occupancy
func (b *HallBooking) IsConfirmed() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *HallBooking) CanBeCancelled() bool {
	return b.Status == StatusTemporary || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can be updated
func (b *HallBooking) CanBeUpdated() bool {
	return b.Status == StatusTemporary || b.Status == StatusConfirmed
}

// RemainingAmount остаток к оплате; может быть отрицательным при переплате
func (b *HallBooking) RemainingAmount() float64 {
	return b.TotalPayable - b.PaidAmount
}

// Interval projects the booking onto the shape consumed by the availability checker
func (b *HallBooking) Interval() BookingInterval {
	return BookingInterval{
		BookingID:   b.ID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TimeSlot:    b.TimeSlot,
		SectionIDs:  b.SectionIDs,
		IsConfirmed: b.IsConfirmed(),
	}
}

// BookingInterval занятость секций зала одним бронированием.
// Ровно та проекция, которую читает проверка доступности.
type BookingInterval struct {
	BookingID   int64
	StartDate   time.Time
	EndDate     time.Time
	TimeSlot    TimeSlot
	SectionIDs  []int64
	IsConfirmed bool
}

// HallBookingsFilter фильтр для получения бронирований зала
type HallBookingsFilter struct {
	HallID          int64          // Обязательный параметр
	SectionIDs      []int64        // Фильтр по секциям (опционально, пересечение)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и истёкшие брони
}
