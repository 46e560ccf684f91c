package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avask/HMS-BookingService/internal/domain"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func interval(id int64, start, end string, slot domain.TimeSlot, sections []int64, confirmed bool) domain.BookingInterval {
	return domain.BookingInterval{
		BookingID:   id,
		StartDate:   mustDate(start),
		EndDate:     mustDate(end),
		TimeSlot:    slot,
		SectionIDs:  sections,
		IsConfirmed: confirmed,
	}
}

func TestCheckAvailability_TalliesBySlotAndStatus(t *testing.T) {
	existing := []domain.BookingInterval{
		interval(1, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{1}, true),
		interval(2, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{1}, false),
		interval(3, "2026-06-01", "2026-06-01", domain.SlotEvening, []int64{1}, true),
		interval(4, "2026-06-01", "2026-06-02", domain.SlotFullDay, []int64{1, 2}, false),
	}

	report := CheckAvailability(existing, AvailabilityQuery{
		HallID:     1,
		SectionIDs: []int64{1},
		StartDate:  mustDate("2026-06-01"),
		EndDate:    mustDate("2026-06-01"),
	})

	assert.Equal(t, domain.SlotOccupancy{Temporary: 1, Confirmed: 1}, report.Morning)
	assert.Equal(t, domain.SlotOccupancy{Temporary: 0, Confirmed: 1}, report.Evening)
	assert.Equal(t, domain.SlotOccupancy{Temporary: 1, Confirmed: 0}, report.FullDay)
}

func TestCheckAvailability_FiltersByDateRange(t *testing.T) {
	existing := []domain.BookingInterval{
		interval(1, "2026-06-01", "2026-06-03", domain.SlotMorning, []int64{1}, true),
		interval(2, "2026-06-10", "2026-06-12", domain.SlotMorning, []int64{1}, true),
	}

	report := CheckAvailability(existing, AvailabilityQuery{
		SectionIDs: []int64{1},
		StartDate:  mustDate("2026-06-03"),
		EndDate:    mustDate("2026-06-05"),
	})

	// Пересекается только первая бронь (общая граница 3 июня)
	assert.Equal(t, 1, report.Morning.Confirmed)
}

func TestCheckAvailability_FiltersBySections(t *testing.T) {
	existing := []domain.BookingInterval{
		interval(1, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{1, 2}, true),
		interval(2, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{3}, true),
	}

	report := CheckAvailability(existing, AvailabilityQuery{
		SectionIDs: []int64{2},
		StartDate:  mustDate("2026-06-01"),
		EndDate:    mustDate("2026-06-01"),
	})

	assert.Equal(t, 1, report.Morning.Confirmed)
}

func TestCheckAvailability_EmptyHall(t *testing.T) {
	report := CheckAvailability(nil, AvailabilityQuery{
		SectionIDs: []int64{1},
		StartDate:  mustDate("2026-06-01"),
		EndDate:    mustDate("2026-06-01"),
	})

	assert.Equal(t, domain.AvailabilityReport{}, report)
}

func TestConflicts(t *testing.T) {
	base := interval(1, "2026-06-01", "2026-06-03", domain.SlotFullDay, []int64{1}, true)

	tests := []struct {
		name  string
		other domain.BookingInterval
		want  bool
	}{
		{
			"full day blocks morning on shared section",
			interval(2, "2026-06-02", "2026-06-02", domain.SlotMorning, []int64{1}, true),
			true,
		},
		{
			"disjoint sections never conflict",
			interval(3, "2026-06-02", "2026-06-02", domain.SlotFullDay, []int64{2}, true),
			false,
		},
		{
			"disjoint dates never conflict",
			interval(4, "2026-06-04", "2026-06-05", domain.SlotFullDay, []int64{1}, true),
			false,
		},
		{
			"shared boundary date conflicts",
			interval(5, "2026-06-03", "2026-06-04", domain.SlotFullDay, []int64{1}, true),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conflicts(base, tt.other))
			// Вердикт симметричен
			assert.Equal(t, tt.want, Conflicts(tt.other, base))
		})
	}
}

func TestConflicts_MorningAndEveningShareTheDay(t *testing.T) {
	morning := interval(1, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{1}, true)
	evening := interval(2, "2026-06-01", "2026-06-01", domain.SlotEvening, []int64{1}, true)

	assert.False(t, Conflicts(morning, evening))
	assert.False(t, Conflicts(evening, morning))

	sameSlot := interval(3, "2026-06-01", "2026-06-01", domain.SlotMorning, []int64{1}, true)
	assert.True(t, Conflicts(morning, sameSlot))
}
