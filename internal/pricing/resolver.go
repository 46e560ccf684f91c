package pricing

import (
	"time"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// ResolveRate возвращает действующую ставку для даты и слота по порядку
// приоритетов (первое совпадение выигрывает):
//  1. режим event - ищется override по типу мероприятия, дальнейшее разрешение
//     идёт по его собственному расписанию и спец-периодам
//  2. режим booking_time - единая ставка без вариаций по дням и спец-периодам
//  3. спец-период, содержащий дату (границы включительно); при перекрытии
//     нескольких периодов выигрывает период с самой поздней startDate
//  4. недельное расписание по дню недели
//
// Отсутствие правила на любом применимом шаге - ошибка конфигурации
// (*domain.NoRateConfiguredError), а не нулевая цена.
func ResolveRate(config *domain.PricingConfig, date time.Time, slot domain.TimeSlot, eventTypeID *int64) (domain.SlotRate, error) {
	if config.PricingMode == domain.PricingModeEvent {
		if eventTypeID == nil {
			return domain.SlotRate{}, noRate(config.HallID, date, slot, eventTypeID)
		}
		override := config.OverrideForEvent(*eventTypeID)
		if override == nil {
			return domain.SlotRate{}, noRate(config.HallID, date, slot, eventTypeID)
		}
		return resolveSchedule(config.HallID, override.UniformRate, override.WeeklySchedule, override.SpecialPeriods, date, slot, eventTypeID)
	}

	if config.PricingMode == domain.PricingModeBookingTime {
		// Единая ставка: спец-периоды и недельное расписание намеренно не читаются
		if config.UniformRate == nil {
			return domain.SlotRate{}, noRate(config.HallID, date, slot, eventTypeID)
		}
		return *config.UniformRate, nil
	}

	return resolveSchedule(config.HallID, nil, config.WeeklySchedule, config.SpecialPeriods, date, slot, eventTypeID)
}

// EffectiveCalculationMode возвращает режим расчёта, действующий для запроса.
// Событийная конфигурация может задавать собственный режим; пустое значение
// наследует режим зала.
func EffectiveCalculationMode(config *domain.PricingConfig, eventTypeID *int64) domain.CalculationMode {
	if config.PricingMode == domain.PricingModeEvent && eventTypeID != nil {
		if override := config.OverrideForEvent(*eventTypeID); override != nil && override.CalculationMode != "" {
			return override.CalculationMode
		}
	}
	return config.CalculationMode
}

// resolveSchedule общий хвост разрешения: спец-периоды, затем недельное расписание
func resolveSchedule(
	hallID int64,
	uniform *domain.SlotRate,
	weekly *domain.WeeklySchedule,
	specials []domain.SpecialPeriod,
	date time.Time,
	slot domain.TimeSlot,
	eventTypeID *int64,
) (domain.SlotRate, error) {
	// Событийная конфигурация может задавать единую ставку вместо расписания
	if uniform != nil {
		return *uniform, nil
	}

	if period := matchSpecialPeriod(specials, date); period != nil {
		return period.Pricing.Rate(slot), nil
	}

	if weekly != nil {
		if day := weekly.DayFor(date); day != nil {
			return day.Rate(slot), nil
		}
	}

	return domain.SlotRate{}, noRate(hallID, date, slot, eventTypeID)
}

// matchSpecialPeriod выбирает спец-период, содержащий дату.
// При перекрытии выигрывает период с самой поздней startDate - детерминированно,
// независимо от порядка элементов. При равных startDate побеждает более поздний
// элемент среза, что повторяет поведение последнего совпадения в исходных данных.
func matchSpecialPeriod(periods []domain.SpecialPeriod, date time.Time) *domain.SpecialPeriod {
	var best *domain.SpecialPeriod
	for i := range periods {
		if !periods[i].Contains(date) {
			continue
		}
		if best == nil || !domain.DateOnly(periods[i].StartDate).Before(domain.DateOnly(best.StartDate)) {
			best = &periods[i]
		}
	}
	return best
}

func noRate(hallID int64, date time.Time, slot domain.TimeSlot, eventTypeID *int64) *domain.NoRateConfiguredError {
	return &domain.NoRateConfiguredError{
		HallID:      hallID,
		Date:        date.Format(domain.DateFormat),
		Slot:        slot,
		EventTypeID: eventTypeID,
	}
}
