package domain

import "time"

// BookingRequest входные данные одного расчёта стоимости.
// Создаётся на каждый запрос котировки/доступности и движком не сохраняется.
type BookingRequest struct {
	HallID               int64
	SectionIDs           []int64
	StartDate            time.Time
	EndDate              time.Time
	TimeSlot             TimeSlot
	EventTypeID          *int64
	AttendeesType        AttendeesType
	MaleAttendeesCount   int
	FemaleAttendeesCount int
	Services             []ServiceCharge
	Discount             DiscountSelection
	VATPercent           float64
	PaidAmount           float64
	ExistingBookingID    *int64 // заполняется при редактировании существующей брони
}

// CostBreakdown полная денежная раскладка бронирования.
// Все поля производные и округлены до 2 знаков; инварианты:
// TotalPayable = AmountAfterDiscount + VATAmount + InsuranceAmount,
// RemainingAmount = TotalPayable - paidAmount (может быть отрицательным при переплате).
type CostBreakdown struct {
	Subtotal            float64 `json:"subtotal"`
	DiscountAmount      float64 `json:"discountAmount"`
	AmountAfterDiscount float64 `json:"amountAfterDiscount"`
	VATAmount           float64 `json:"vatAmount"`
	InsuranceAmount     float64 `json:"insuranceAmount"`
	TotalPayable        float64 `json:"totalPayable"`
	RemainingAmount     float64 `json:"remainingAmount"`
}

// SlotOccupancy счётчики занятости одного слота
type SlotOccupancy struct {
	Temporary int `json:"temporary"`
	Confirmed int `json:"confirmed"`
}

// AvailabilityReport занятость по всем трём слотам для запрошенных секций и
// диапазона дат. Возвращаются все три слота независимо от того, какой слот
// собирается бронировать вызывающий - чтобы показать занятость целого дня.
type AvailabilityReport struct {
	Morning SlotOccupancy `json:"morning"`
	Evening SlotOccupancy `json:"evening"`
	FullDay SlotOccupancy `json:"fullDay"`
}

// Occupancy returns the occupancy entry for the given slot
func (r AvailabilityReport) Occupancy(slot TimeSlot) SlotOccupancy {
	switch slot {
	case SlotMorning:
		return r.Morning
	case SlotEvening:
		return r.Evening
	default:
		return r.FullDay
	}
}
