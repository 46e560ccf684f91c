package get_special_discounts

import "github.com/avask/HMS-BookingService/internal/domain"

// SpecialDiscountResponse одна действующая скидка каталога
type SpecialDiscountResponse struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Response список действующих специальных скидок
type Response struct {
	Discounts []SpecialDiscountResponse `json:"discounts"`
}

func toResponse(discounts []*domain.SpecialDiscount) *Response {
	resp := &Response{Discounts: make([]SpecialDiscountResponse, 0, len(discounts))}
	for _, d := range discounts {
		resp.Discounts = append(resp.Discounts, SpecialDiscountResponse{
			ID:    d.ID,
			Title: d.Title,
			Type:  string(d.Type),
			Value: d.Value,
		})
	}
	return resp
}
