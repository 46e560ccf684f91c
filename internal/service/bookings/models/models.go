package models

import (
	"errors"
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetHallBookingsRequest запрос на получение бронирований зала
type GetHallBookingsRequest struct {
	UserID          int64      `json:"userId"`
	HallID          int64      `json:"hallId"`
	SectionIDs      []int64    `json:"sectionIds,omitempty"`      // Фильтр по секциям (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHallBookingsRequest) ToDomainFilter() (domain.HallBookingsFilter, error) {
	filter := domain.HallBookingsFilter{
		HallID:          r.HallID,
		SectionIDs:      r.SectionIDs,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	HallID     int64   `json:"hallId"`
	SectionIDs []int64 `json:"sectionIds"`
	CustomerID int64   `json:"customerId"`

	EventTypeID          *int64                 `json:"eventTypeId,omitempty"`
	StartDate            string                 `json:"startDate"` // "2025-10-15"
	EndDate              string                 `json:"endDate"`
	TimeSlot             string                 `json:"timeSlot"`
	AttendeesType        string                 `json:"attendeesType"`
	MaleAttendeesCount   int                    `json:"maleAttendeesCount"`
	FemaleAttendeesCount int                    `json:"femaleAttendeesCount"`
	Services             []domain.ServiceCharge `json:"services"`

	// Снимок денежной раскладки
	DiscountType    *string  `json:"discountType,omitempty"`
	DiscountValue   *float64 `json:"discountValue,omitempty"`
	VATPercent      float64  `json:"vatPercent"`
	Subtotal        float64  `json:"subtotal"`
	DiscountAmount  float64  `json:"discountAmount"`
	VATAmount       float64  `json:"vatAmount"`
	InsuranceAmount float64  `json:"insuranceAmount"`
	TotalPayable    float64  `json:"totalPayable"`
	PaidAmount      float64  `json:"paidAmount"`
	RemainingAmount float64  `json:"remainingAmount"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.HallBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	services := b.Services
	if services == nil {
		services = []domain.ServiceCharge{}
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		HallID:               b.HallID,
		SectionIDs:           b.SectionIDs,
		CustomerID:           b.CustomerID,
		EventTypeID:          b.EventTypeID,
		StartDate:            b.StartDate.Format(domain.DateFormat),
		EndDate:              b.EndDate.Format(domain.DateFormat),
		TimeSlot:             string(b.TimeSlot),
		AttendeesType:        string(b.AttendeesType),
		MaleAttendeesCount:   b.MaleAttendeesCount,
		FemaleAttendeesCount: b.FemaleAttendeesCount,
		Services:             services,
		DiscountValue:        b.DiscountValue,
		VATPercent:           b.VATPercent,
		Subtotal:             b.Subtotal,
		DiscountAmount:       b.DiscountAmount,
		VATAmount:            b.VATAmount,
		InsuranceAmount:      b.InsuranceAmount,
		TotalPayable:         b.TotalPayable,
		PaidAmount:           b.PaidAmount,
		RemainingAmount:      b.RemainingAmount(),
		Status:               string(b.Status),
		Notes:                b.Notes,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.DiscountType != nil {
		discountType := string(*b.DiscountType)
		resp.DiscountType = &discountType
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.HallBooking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusTemporary,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByManager,
		domain.StatusExpired,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
