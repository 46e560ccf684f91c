package create_booking

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
	createBooking "github.com/avask/HMS-BookingService/internal/usecase/create_booking"
)

// DiscountRequest выбор скидки в HTTP запросе
type DiscountRequest struct {
	Kind       string  `json:"kind"`
	Type       string  `json:"type,omitempty"`
	Value      float64 `json:"value,omitempty"`
	DiscountID *int64  `json:"discountId,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HallID               int64                  `json:"hallId"`
	SectionIDs           []int64                `json:"sectionIds"`
	StartDate            string                 `json:"startDate"` // "2025-10-15"
	EndDate              string                 `json:"endDate"`
	TimeSlot             string                 `json:"timeSlot"`
	EventTypeID          *int64                 `json:"eventTypeId,omitempty"`
	AttendeesType        string                 `json:"attendeesType"`
	MaleAttendeesCount   int                    `json:"maleAttendeesCount"`
	FemaleAttendeesCount int                    `json:"femaleAttendeesCount"`
	Services             []domain.ServiceCharge `json:"services,omitempty"`
	Discount             *DiscountRequest       `json:"discount,omitempty"`
	VATPercent           *float64               `json:"vatPercent,omitempty"`
	PaidAmount           float64                `json:"paidAmount,omitempty"`
	Confirmed            bool                   `json:"confirmed,omitempty"`
	Notes                *string                `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	HallID     int64   `json:"hallId"`
	SectionIDs []int64 `json:"sectionIds"`
	CustomerID int64   `json:"customerId"`

	EventTypeID          *int64                 `json:"eventTypeId,omitempty"`
	StartDate            string                 `json:"startDate"`
	EndDate              string                 `json:"endDate"`
	TimeSlot             string                 `json:"timeSlot"`
	AttendeesType        string                 `json:"attendeesType"`
	MaleAttendeesCount   int                    `json:"maleAttendeesCount"`
	FemaleAttendeesCount int                    `json:"femaleAttendeesCount"`
	Services             []domain.ServiceCharge `json:"services"`

	DiscountType        *string  `json:"discountType,omitempty"`
	DiscountValue       *float64 `json:"discountValue,omitempty"`
	VATPercent          float64  `json:"vatPercent"`
	Subtotal            float64  `json:"subtotal"`
	DiscountAmount      float64  `json:"discountAmount"`
	AmountAfterDiscount float64  `json:"amountAfterDiscount"`
	VATAmount           float64  `json:"vatAmount"`
	InsuranceAmount     float64  `json:"insuranceAmount"`
	TotalPayable        float64  `json:"totalPayable"`
	PaidAmount          float64  `json:"paidAmount"`
	RemainingAmount     float64  `json:"remainingAmount"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		CustomerID:           customerID,
		HallID:               r.HallID,
		SectionIDs:           r.SectionIDs,
		StartDate:            startDate,
		EndDate:              endDate,
		TimeSlot:             r.TimeSlot,
		EventTypeID:          r.EventTypeID,
		AttendeesType:        r.AttendeesType,
		MaleAttendeesCount:   r.MaleAttendeesCount,
		FemaleAttendeesCount: r.FemaleAttendeesCount,
		Services:             r.Services,
		VATPercent:           r.VATPercent,
		PaidAmount:           r.PaidAmount,
		Confirmed:            r.Confirmed,
		Notes:                r.Notes,
	}

	if r.Discount != nil {
		req.Discount = &createBooking.DiscountInput{
			Kind:       r.Discount.Kind,
			Type:       r.Discount.Type,
			Value:      r.Discount.Value,
			DiscountID: r.Discount.DiscountID,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		HallID:               resp.HallID,
		SectionIDs:           resp.SectionIDs,
		CustomerID:           resp.CustomerID,
		EventTypeID:          resp.EventTypeID,
		StartDate:            resp.StartDate,
		EndDate:              resp.EndDate,
		TimeSlot:             resp.TimeSlot,
		AttendeesType:        resp.AttendeesType,
		MaleAttendeesCount:   resp.MaleAttendeesCount,
		FemaleAttendeesCount: resp.FemaleAttendeesCount,
		Services:             resp.Services,
		DiscountType:         resp.DiscountType,
		DiscountValue:        resp.DiscountValue,
		VATPercent:           resp.VATPercent,
		Subtotal:             resp.Subtotal,
		DiscountAmount:       resp.DiscountAmount,
		AmountAfterDiscount:  resp.AmountAfterDiscount,
		VATAmount:            resp.VATAmount,
		InsuranceAmount:      resp.InsuranceAmount,
		TotalPayable:         resp.TotalPayable,
		PaidAmount:           resp.PaidAmount,
		RemainingAmount:      resp.RemainingAmount,
		Status:               resp.Status,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
