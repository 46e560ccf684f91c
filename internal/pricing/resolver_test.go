package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avask/HMS-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// uniformWeek расписание с одинаковой фиксированной ценой на все дни недели
func uniformWeek(price float64) *domain.WeeklySchedule {
	day := domain.DayPricing{
		Morning: domain.NewFixedSlotRate(price),
		Evening: domain.NewFixedSlotRate(price),
		FullDay: domain.NewFixedSlotRate(price * 2),
	}
	return &domain.WeeklySchedule{
		Saturday:  &day,
		Sunday:    &day,
		Monday:    &day,
		Tuesday:   &day,
		Wednesday: &day,
		Thursday:  &day,
		Friday:    &day,
	}
}

func fixedPeriod(id int64, start, end time.Time, price float64) domain.SpecialPeriod {
	return domain.SpecialPeriod{
		ID:        id,
		Title:     "holiday",
		StartDate: start,
		EndDate:   end,
		Pricing: domain.DayPricing{
			Morning: domain.NewFixedSlotRate(price),
			Evening: domain.NewFixedSlotRate(price),
			FullDay: domain.NewFixedSlotRate(price),
		},
	}
}

func TestResolveRate_BookingTime_UniformRate(t *testing.T) {
	uniform := domain.NewFixedSlotRate(3000)
	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeBookingTime,
		CalculationMode: domain.CalculationModeFixedPrice,
		UniformRate:     &uniform,
		// Расписание и спец-периоды присутствуют, но не должны читаться
		WeeklySchedule: uniformWeek(100),
		SpecialPeriods: []domain.SpecialPeriod{
			fixedPeriod(1, date(2026, 1, 1), date(2026, 1, 10), 9999),
		},
	}

	rate, err := ResolveRate(config, date(2026, 1, 5), domain.SlotMorning, nil)
	require.NoError(t, err)
	require.NotNil(t, rate.FixedPrice)
	assert.Equal(t, 3000.0, *rate.FixedPrice)
}

func TestResolveRate_BookingTime_MissingUniformRate(t *testing.T) {
	config := &domain.PricingConfig{
		HallID:      1,
		PricingMode: domain.PricingModeBookingTime,
	}

	_, err := ResolveRate(config, date(2026, 1, 5), domain.SlotMorning, nil)
	require.Error(t, err)

	var noRate *domain.NoRateConfiguredError
	require.ErrorAs(t, err, &noRate)
	assert.Equal(t, int64(1), noRate.HallID)
	assert.Equal(t, "2026-01-05", noRate.Date)
	assert.Equal(t, domain.SlotMorning, noRate.Slot)
}

func TestResolveRate_Fixed_WeeklySchedule(t *testing.T) {
	saturday := domain.DayPricing{
		Morning: domain.NewFixedSlotRate(500),
		Evening: domain.NewFixedSlotRate(700),
		FullDay: domain.NewFixedSlotRate(1000),
	}
	week := uniformWeek(100)
	week.Saturday = &saturday

	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeFixed,
		CalculationMode: domain.CalculationModeFixedPrice,
		WeeklySchedule:  week,
	}

	// 2026-01-03 - суббота
	rate, err := ResolveRate(config, date(2026, 1, 3), domain.SlotEvening, nil)
	require.NoError(t, err)
	require.NotNil(t, rate.FixedPrice)
	assert.Equal(t, 700.0, *rate.FixedPrice)

	// 2026-01-05 - понедельник, обычная ставка
	rate, err = ResolveRate(config, date(2026, 1, 5), domain.SlotEvening, nil)
	require.NoError(t, err)
	require.NotNil(t, rate.FixedPrice)
	assert.Equal(t, 100.0, *rate.FixedPrice)
}

func TestResolveRate_SpecialPeriod_BeatsWeeklySchedule(t *testing.T) {
	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeFixed,
		CalculationMode: domain.CalculationModeFixedPrice,
		WeeklySchedule:  uniformWeek(100),
		SpecialPeriods: []domain.SpecialPeriod{
			fixedPeriod(1, date(2026, 3, 1), date(2026, 3, 10), 800),
		},
	}

	// Внутри периода, границы включительно
	for _, d := range []time.Time{date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 10)} {
		rate, err := ResolveRate(config, d, domain.SlotMorning, nil)
		require.NoError(t, err)
		assert.Equal(t, 800.0, *rate.FixedPrice)
	}

	// За границей периода - обычное расписание
	rate, err := ResolveRate(config, date(2026, 3, 11), domain.SlotMorning, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, *rate.FixedPrice)
}

func TestResolveRate_OverlappingSpecialPeriods_LatestStartWins(t *testing.T) {
	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeFixed,
		CalculationMode: domain.CalculationModeFixedPrice,
		WeeklySchedule:  uniformWeek(100),
		SpecialPeriods: []domain.SpecialPeriod{
			fixedPeriod(1, date(2026, 3, 1), date(2026, 3, 31), 500),
			fixedPeriod(2, date(2026, 3, 10), date(2026, 3, 15), 900),
		},
	}

	// 12 марта покрыто обоими периодами: выигрывает более поздний startDate
	rate, err := ResolveRate(config, date(2026, 3, 12), domain.SlotMorning, nil)
	require.NoError(t, err)
	assert.Equal(t, 900.0, *rate.FixedPrice)

	// Порядок элементов не влияет на вердикт
	config.SpecialPeriods[0], config.SpecialPeriods[1] = config.SpecialPeriods[1], config.SpecialPeriods[0]
	rate, err = ResolveRate(config, date(2026, 3, 12), domain.SlotMorning, nil)
	require.NoError(t, err)
	assert.Equal(t, 900.0, *rate.FixedPrice)

	// Вне вложенного периода действует внешний
	rate, err = ResolveRate(config, date(2026, 3, 20), domain.SlotMorning, nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, *rate.FixedPrice)
}

func TestResolveRate_Event_OverrideSchedule(t *testing.T) {
	eventTypeID := int64(7)
	uniform := domain.NewFixedSlotRate(12000)
	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeEvent,
		CalculationMode: domain.CalculationModeFixedPrice,
		EventOverrides: []domain.EventPriceOverride{
			{
				EventTypeID: eventTypeID,
				UniformRate: &uniform,
			},
			{
				EventTypeID:    8,
				WeeklySchedule: uniformWeek(200),
			},
		},
	}

	rate, err := ResolveRate(config, date(2026, 5, 1), domain.SlotFullDay, &eventTypeID)
	require.NoError(t, err)
	assert.Equal(t, 12000.0, *rate.FixedPrice)

	other := int64(8)
	rate, err = ResolveRate(config, date(2026, 5, 1), domain.SlotMorning, &other)
	require.NoError(t, err)
	assert.Equal(t, 200.0, *rate.FixedPrice)
}

func TestResolveRate_Event_NoEventType(t *testing.T) {
	config := &domain.PricingConfig{
		HallID:      1,
		PricingMode: domain.PricingModeEvent,
		EventOverrides: []domain.EventPriceOverride{
			{EventTypeID: 7, WeeklySchedule: uniformWeek(200)},
		},
	}

	_, err := ResolveRate(config, date(2026, 5, 1), domain.SlotMorning, nil)
	var noRate *domain.NoRateConfiguredError
	require.ErrorAs(t, err, &noRate)
}

func TestResolveRate_Event_UnknownEventType(t *testing.T) {
	config := &domain.PricingConfig{
		HallID:      1,
		PricingMode: domain.PricingModeEvent,
		EventOverrides: []domain.EventPriceOverride{
			{EventTypeID: 7, WeeklySchedule: uniformWeek(200)},
		},
	}

	unknown := int64(99)
	_, err := ResolveRate(config, date(2026, 5, 1), domain.SlotMorning, &unknown)
	var noRate *domain.NoRateConfiguredError
	require.ErrorAs(t, err, &noRate)
	require.NotNil(t, noRate.EventTypeID)
	assert.Equal(t, int64(99), *noRate.EventTypeID)
}

func TestResolveRate_Fixed_MissingWeekday(t *testing.T) {
	week := uniformWeek(100)
	week.Monday = nil
	config := &domain.PricingConfig{
		HallID:          1,
		PricingMode:     domain.PricingModeFixed,
		CalculationMode: domain.CalculationModeFixedPrice,
		WeeklySchedule:  week,
	}

	// 2026-01-05 - понедельник
	_, err := ResolveRate(config, date(2026, 1, 5), domain.SlotMorning, nil)
	var noRate *domain.NoRateConfiguredError
	require.ErrorAs(t, err, &noRate)
}

func TestEffectiveCalculationMode(t *testing.T) {
	eventTypeID := int64(7)

	t.Run("override carries its own mode", func(t *testing.T) {
		config := &domain.PricingConfig{
			PricingMode:     domain.PricingModeEvent,
			CalculationMode: domain.CalculationModeFixedPrice,
			EventOverrides: []domain.EventPriceOverride{
				{EventTypeID: eventTypeID, CalculationMode: domain.CalculationModePerPerson},
			},
		}
		assert.Equal(t, domain.CalculationModePerPerson, EffectiveCalculationMode(config, &eventTypeID))
	})

	t.Run("empty override mode inherits hall mode", func(t *testing.T) {
		config := &domain.PricingConfig{
			PricingMode:     domain.PricingModeEvent,
			CalculationMode: domain.CalculationModeFixedPrice,
			EventOverrides: []domain.EventPriceOverride{
				{EventTypeID: eventTypeID},
			},
		}
		assert.Equal(t, domain.CalculationModeFixedPrice, EffectiveCalculationMode(config, &eventTypeID))
	})

	t.Run("non-event mode uses hall mode", func(t *testing.T) {
		config := &domain.PricingConfig{
			PricingMode:     domain.PricingModeFixed,
			CalculationMode: domain.CalculationModePerPerson,
		}
		assert.Equal(t, domain.CalculationModePerPerson, EffectiveCalculationMode(config, &eventTypeID))
	})
}
