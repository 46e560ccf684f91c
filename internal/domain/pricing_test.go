package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek(price float64) *WeeklySchedule {
	day := DayPricing{
		Morning: NewFixedSlotRate(price),
		Evening: NewFixedSlotRate(price),
		FullDay: NewFixedSlotRate(price),
	}
	return &WeeklySchedule{
		Saturday:  &day,
		Sunday:    &day,
		Monday:    &day,
		Tuesday:   &day,
		Wednesday: &day,
		Thursday:  &day,
		Friday:    &day,
	}
}

func TestSlotRate_Validate(t *testing.T) {
	fixed := 100.0
	negative := -1.0
	male := 50.0
	female := 40.0

	tests := []struct {
		name    string
		rate    SlotRate
		mode    CalculationMode
		wantErr bool
	}{
		{"fixed rate for fixed mode", SlotRate{FixedPrice: &fixed}, CalculationModeFixedPrice, false},
		{"per-person rate for per-person mode", SlotRate{MalePrice: &male, FemalePrice: &female}, CalculationModePerPerson, false},
		{"missing fixed price", SlotRate{}, CalculationModeFixedPrice, true},
		{"negative fixed price", SlotRate{FixedPrice: &negative}, CalculationModeFixedPrice, true},
		{"missing female price", SlotRate{MalePrice: &male}, CalculationModePerPerson, true},
		{"mixed shape in fixed mode", SlotRate{FixedPrice: &fixed, MalePrice: &male}, CalculationModeFixedPrice, true},
		{"mixed shape in per-person mode", SlotRate{FixedPrice: &fixed, MalePrice: &male, FemalePrice: &female}, CalculationModePerPerson, true},
		{"unknown mode", SlotRate{FixedPrice: &fixed}, CalculationMode("hourly"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rate.Validate(tt.mode, "rate")
			if tt.wantErr {
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeeklySchedule_Validate_MissingWeekday(t *testing.T) {
	week := fullWeek(100)
	week.Wednesday = nil

	err := week.Validate(CalculationModeFixedPrice)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weeklySchedule.wednesday", verr.Field)
}

func TestSpecialPeriod_Validate(t *testing.T) {
	pricing := DayPricing{
		Morning: NewFixedSlotRate(100),
		Evening: NewFixedSlotRate(100),
		FullDay: NewFixedSlotRate(100),
	}

	t.Run("end before start rejected", func(t *testing.T) {
		period := SpecialPeriod{
			StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Pricing:   pricing,
		}
		var verr *ValidationError
		assert.ErrorAs(t, period.Validate(CalculationModeFixedPrice, "specialPeriods[0]"), &verr)
	})

	t.Run("single day period allowed", func(t *testing.T) {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		period := SpecialPeriod{StartDate: day, EndDate: day, Pricing: pricing}
		assert.NoError(t, period.Validate(CalculationModeFixedPrice, "specialPeriods[0]"))
	})
}

func TestPricingConfig_Validate(t *testing.T) {
	uniform := NewFixedSlotRate(3000)

	tests := []struct {
		name      string
		config    PricingConfig
		wantField string
	}{
		{
			"booking_time requires uniform rate",
			PricingConfig{
				HallID:          1,
				PricingMode:     PricingModeBookingTime,
				CalculationMode: CalculationModeFixedPrice,
			},
			"uniformRate",
		},
		{
			"fixed requires weekly schedule",
			PricingConfig{
				HallID:          1,
				PricingMode:     PricingModeFixed,
				CalculationMode: CalculationModeFixedPrice,
			},
			"weeklySchedule",
		},
		{
			"event requires overrides",
			PricingConfig{
				HallID:          1,
				PricingMode:     PricingModeEvent,
				CalculationMode: CalculationModeFixedPrice,
			},
			"eventOverrides",
		},
		{
			"negative insurance rejected",
			PricingConfig{
				HallID:          1,
				PricingMode:     PricingModeBookingTime,
				CalculationMode: CalculationModeFixedPrice,
				UniformRate:     &uniform,
				InsuranceAmount: -1,
			},
			"insuranceAmount",
		},
		{
			"unknown pricing mode rejected",
			PricingConfig{
				HallID:          1,
				PricingMode:     PricingMode("hourly"),
				CalculationMode: CalculationModeFixedPrice,
			},
			"pricingMode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, int64(1), verr.HallID)
		})
	}
}

func TestPricingConfig_Validate_ValidConfigs(t *testing.T) {
	uniform := NewFixedSlotRate(3000)

	t.Run("booking_time", func(t *testing.T) {
		config := PricingConfig{
			HallID:          1,
			PricingMode:     PricingModeBookingTime,
			CalculationMode: CalculationModeFixedPrice,
			UniformRate:     &uniform,
		}
		assert.NoError(t, config.Validate())
	})

	t.Run("fixed with special periods", func(t *testing.T) {
		config := PricingConfig{
			HallID:          1,
			PricingMode:     PricingModeFixed,
			CalculationMode: CalculationModeFixedPrice,
			WeeklySchedule:  fullWeek(100),
			SpecialPeriods: []SpecialPeriod{
				{
					StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					Pricing: DayPricing{
						Morning: NewFixedSlotRate(800),
						Evening: NewFixedSlotRate(800),
						FullDay: NewFixedSlotRate(800),
					},
				},
			},
		}
		assert.NoError(t, config.Validate())
	})

	t.Run("event with per-override mode", func(t *testing.T) {
		perPerson := NewPerPersonSlotRate(100, 80)
		config := PricingConfig{
			HallID:          1,
			PricingMode:     PricingModeEvent,
			CalculationMode: CalculationModeFixedPrice,
			EventOverrides: []EventPriceOverride{
				{
					EventTypeID:     7,
					CalculationMode: CalculationModePerPerson,
					UniformRate:     &perPerson,
				},
			},
		}
		assert.NoError(t, config.Validate())
	})
}

func TestPricingConfig_Validate_OverrideScheduleRequired(t *testing.T) {
	config := PricingConfig{
		HallID:          1,
		PricingMode:     PricingModeEvent,
		CalculationMode: CalculationModeFixedPrice,
		EventOverrides: []EventPriceOverride{
			{EventTypeID: 7},
		},
	}

	err := config.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "eventOverrides[0].weeklySchedule", verr.Field)
}

func TestTimeSlot_ConflictsWith(t *testing.T) {
	assert.True(t, SlotFullDay.ConflictsWith(SlotMorning))
	assert.True(t, SlotMorning.ConflictsWith(SlotFullDay))
	assert.True(t, SlotMorning.ConflictsWith(SlotMorning))
	assert.False(t, SlotMorning.ConflictsWith(SlotEvening))
	assert.False(t, SlotEvening.ConflictsWith(SlotMorning))
}
