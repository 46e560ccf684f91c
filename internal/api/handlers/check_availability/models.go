package check_availability

import (
	checkAvailability "github.com/avask/HMS-BookingService/internal/usecase/check_availability"
)

// SlotOccupancyResponse счётчики занятости одного слота
type SlotOccupancyResponse struct {
	Temporary int `json:"temporary"`
	Confirmed int `json:"confirmed"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HallID     int64   `json:"hallId"`
	SectionIDs []int64 `json:"sectionIds"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`

	Morning SlotOccupancyResponse `json:"morning"`
	Evening SlotOccupancyResponse `json:"evening"`
	FullDay SlotOccupancyResponse `json:"fullDay"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		HallID:     resp.HallID,
		SectionIDs: resp.SectionIDs,
		StartDate:  resp.StartDate,
		EndDate:    resp.EndDate,
		Morning:    SlotOccupancyResponse{Temporary: resp.Morning.Temporary, Confirmed: resp.Morning.Confirmed},
		Evening:    SlotOccupancyResponse{Temporary: resp.Evening.Temporary, Confirmed: resp.Evening.Confirmed},
		FullDay:    SlotOccupancyResponse{Temporary: resp.FullDay.Temporary, Confirmed: resp.FullDay.Confirmed},
	}
}
