package quote_booking

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
	quoteBooking "github.com/avask/HMS-BookingService/internal/usecase/quote_booking"
)

// DiscountRequest выбор скидки в HTTP запросе
type DiscountRequest struct {
	Kind       string  `json:"kind"`
	Type       string  `json:"type,omitempty"`
	Value      float64 `json:"value,omitempty"`
	DiscountID *int64  `json:"discountId,omitempty"`
}

// QuoteBookingRequest HTTP request model
type QuoteBookingRequest struct {
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
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	HallID     int64  `json:"hallId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	TimeSlot   string `json:"timeSlot"`

	DiscountType  *string  `json:"discountType,omitempty"`
	DiscountValue *float64 `json:"discountValue,omitempty"`
	DiscountID    *int64   `json:"discountId,omitempty"`

	VATPercent          float64 `json:"vatPercent"`
	Subtotal            float64 `json:"subtotal"`
	DiscountAmount      float64 `json:"discountAmount"`
	AmountAfterDiscount float64 `json:"amountAfterDiscount"`
	VATAmount           float64 `json:"vatAmount"`
	InsuranceAmount     float64 `json:"insuranceAmount"`
	TotalPayable        float64 `json:"totalPayable"`
	PaidAmount          float64 `json:"paidAmount"`
	RemainingAmount     float64 `json:"remainingAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteBookingRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &quoteBooking.Request{
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
	}

	if r.Discount != nil {
		req.Discount = &quoteBooking.DiscountInput{
			Kind:       r.Discount.Kind,
			Type:       r.Discount.Type,
			Value:      r.Discount.Value,
			DiscountID: r.Discount.DiscountID,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		HallID:              resp.HallID,
		StartDate:           resp.StartDate,
		EndDate:             resp.EndDate,
		TimeSlot:            resp.TimeSlot,
		DiscountType:        resp.DiscountType,
		DiscountValue:       resp.DiscountValue,
		DiscountID:          resp.DiscountID,
		VATPercent:          resp.VATPercent,
		Subtotal:            resp.Subtotal,
		DiscountAmount:      resp.DiscountAmount,
		AmountAfterDiscount: resp.AmountAfterDiscount,
		VATAmount:           resp.VATAmount,
		InsuranceAmount:     resp.InsuranceAmount,
		TotalPayable:        resp.TotalPayable,
		PaidAmount:          resp.PaidAmount,
		RemainingAmount:     resp.RemainingAmount,
	}
}
