package domain

import (
	"fmt"
	"time"
)

// PricingMode represents the top-level pricing strategy of a hall
type PricingMode string

const (
	// PricingModeBookingTime uniform per-slot pricing regardless of event type
	PricingModeBookingTime PricingMode = "booking_time"
	// PricingModeFixed hall-level fixed/per-person pricing, optionally overridden per special period
	PricingModeFixed PricingMode = "fixed"
	// PricingModeEvent pricing scoped to one specific event type, one override per event
	PricingModeEvent PricingMode = "event"
)

// IsValid returns true if the pricing mode is one of the known values
func (m PricingMode) IsValid() bool {
	return m == PricingModeBookingTime || m == PricingModeFixed || m == PricingModeEvent
}

// CalculationMode represents how a slot rate is structured
type CalculationMode string

const (
	// CalculationModeFixedPrice single price per slot
	CalculationModeFixedPrice CalculationMode = "fixed_price"
	// CalculationModePerPerson separate male/female unit prices per slot
	CalculationModePerPerson CalculationMode = "per_person"
)

// IsValid returns true if the calculation mode is one of the known values
func (m CalculationMode) IsValid() bool {
	return m == CalculationModeFixedPrice || m == CalculationModePerPerson
}

// TimeSlot represents one of three bookable time windows in a day
type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotEvening TimeSlot = "evening"
	SlotFullDay TimeSlot = "full_day"
)

// AllTimeSlots порядок слотов в отчётах занятости
var AllTimeSlots = []TimeSlot{SlotMorning, SlotEvening, SlotFullDay}

// IsValid returns true if the time slot is one of the known values
func (s TimeSlot) IsValid() bool {
	return s == SlotMorning || s == SlotEvening || s == SlotFullDay
}

// ConflictsWith returns true if two slots on the same date contend for the hall.
// FullDay conflicts with any slot; morning and evening are disjoint halves of the day.
func (s TimeSlot) ConflictsWith(other TimeSlot) bool {
	if s == SlotFullDay || other == SlotFullDay {
		return true
	}
	return s == other
}

// SlotRate represents the price rule for a single time slot.
// Exactly one shape is populated depending on the calculation mode:
// FixedPrice for fixed_price, MalePrice+FemalePrice for per_person.
type SlotRate struct {
	FixedPrice  *float64 `json:"fixedPrice,omitempty"`
	MalePrice   *float64 `json:"malePrice,omitempty"`
	FemalePrice *float64 `json:"femalePrice,omitempty"`
}

// NewFixedSlotRate creates a fixed_price slot rate
func NewFixedSlotRate(price float64) SlotRate {
	return SlotRate{FixedPrice: &price}
}

// NewPerPersonSlotRate creates a per_person slot rate
func NewPerPersonSlotRate(malePrice, femalePrice float64) SlotRate {
	return SlotRate{MalePrice: &malePrice, FemalePrice: &femalePrice}
}

// Validate проверяет, что форма ставки соответствует режиму расчёта.
// Смешанные формы (фиксированная цена вместе с ценами по гостям) отклоняются,
// как и отрицательные цены.
func (r SlotRate) Validate(mode CalculationMode, field string) error {
	switch mode {
	case CalculationModeFixedPrice:
		if r.FixedPrice == nil {
			return &ValidationError{Field: field, Reason: "fixedPrice is required for fixed_price mode"}
		}
		if *r.FixedPrice < 0 {
			return &ValidationError{Field: field, Reason: "fixedPrice must be >= 0"}
		}
		if r.MalePrice != nil || r.FemalePrice != nil {
			return &ValidationError{Field: field, Reason: "per-person prices are not allowed for fixed_price mode"}
		}
	case CalculationModePerPerson:
		if r.MalePrice == nil || r.FemalePrice == nil {
			return &ValidationError{Field: field, Reason: "malePrice and femalePrice are required for per_person mode"}
		}
		if *r.MalePrice < 0 || *r.FemalePrice < 0 {
			return &ValidationError{Field: field, Reason: "per-person prices must be >= 0"}
		}
		if r.FixedPrice != nil {
			return &ValidationError{Field: field, Reason: "fixedPrice is not allowed for per_person mode"}
		}
	default:
		return &ValidationError{Field: "calculationMode", Reason: "unknown calculation mode"}
	}
	return nil
}

// DayPricing ставки одного дня по всем трём слотам
type DayPricing struct {
	Morning SlotRate `json:"morning"`
	Evening SlotRate `json:"evening"`
	FullDay SlotRate `json:"fullDay"`
}

// Rate returns the slot rate for the given time slot
func (d DayPricing) Rate(slot TimeSlot) SlotRate {
	switch slot {
	case SlotMorning:
		return d.Morning
	case SlotEvening:
		return d.Evening
	default:
		return d.FullDay
	}
}

// Validate проверяет ставки всех трёх слотов
func (d DayPricing) Validate(mode CalculationMode, field string) error {
	if err := d.Morning.Validate(mode, field+".morning"); err != nil {
		return err
	}
	if err := d.Evening.Validate(mode, field+".evening"); err != nil {
		return err
	}
	return d.FullDay.Validate(mode, field+".fullDay")
}

// WeeklySchedule recurring weekly rates, Saturday-first per business convention.
// All seven weekdays must be present.
type WeeklySchedule struct {
	Saturday  *DayPricing `json:"saturday"`
	Sunday    *DayPricing `json:"sunday"`
	Monday    *DayPricing `json:"monday"`
	Tuesday   *DayPricing `json:"tuesday"`
	Wednesday *DayPricing `json:"wednesday"`
	Thursday  *DayPricing `json:"thursday"`
	Friday    *DayPricing `json:"friday"`
}

// DayFor returns the day pricing for the weekday of the given date
func (w *WeeklySchedule) DayFor(date time.Time) *DayPricing {
	switch date.Weekday() {
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	default:
		return w.Friday
	}
}

// Validate проверяет, что все семь дней недели заполнены корректными ставками
func (w *WeeklySchedule) Validate(mode CalculationMode) error {
	days := []struct {
		name    string
		pricing *DayPricing
	}{
		{"saturday", w.Saturday},
		{"sunday", w.Sunday},
		{"monday", w.Monday},
		{"tuesday", w.Tuesday},
		{"wednesday", w.Wednesday},
		{"thursday", w.Thursday},
		{"friday", w.Friday},
	}

	for _, day := range days {
		if day.pricing == nil {
			return &ValidationError{Field: "weeklySchedule." + day.name, Reason: "weekday is missing"}
		}
		if err := day.pricing.Validate(mode, "weeklySchedule."+day.name); err != nil {
			return err
		}
	}
	return nil
}

// SpecialPeriod date-bounded override of the normal weekly rate, e.g. holiday pricing.
// Periods may overlap each other in the raw data; the resolver disambiguates.
type SpecialPeriod struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Pricing   DayPricing `json:"pricing"`
}

// Contains returns true if the date falls inside the period, boundaries inclusive
func (p SpecialPeriod) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// Validate проверяет границы периода и его ставки
func (p SpecialPeriod) Validate(mode CalculationMode, field string) error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return &ValidationError{Field: field, Reason: "startDate and endDate are required"}
	}
	if DateOnly(p.EndDate).Before(DateOnly(p.StartDate)) {
		return &ValidationError{Field: field, Reason: "endDate must not be before startDate"}
	}
	return p.Pricing.Validate(mode, field+".pricing")
}

// EventPriceOverride конфигурация ценообразования для одного типа мероприятия.
// Используется только при pricingMode = event.
type EventPriceOverride struct {
	EventTypeID     int64           `json:"eventTypeId"`
	CalculationMode CalculationMode `json:"calculationMode"`
	UniformRate     *SlotRate       `json:"uniformRate,omitempty"`
	WeeklySchedule  *WeeklySchedule `json:"weeklySchedule,omitempty"`
	SpecialPeriods  []SpecialPeriod `json:"specialPeriods,omitempty"`
}

// PricingConfig represents the full pricing configuration of a hall.
// Created and edited by hall administrators; read-only to the pricing engine.
type PricingConfig struct {
	HallID          int64                `json:"hallId"`
	PricingMode     PricingMode          `json:"pricingMode"`
	CalculationMode CalculationMode      `json:"calculationMode"`
	UniformRate     *SlotRate            `json:"uniformRate,omitempty"` // для режима booking_time
	WeeklySchedule  *WeeklySchedule      `json:"weeklySchedule,omitempty"`
	SpecialPeriods  []SpecialPeriod      `json:"specialPeriods,omitempty"`
	InsuranceAmount float64              `json:"insuranceAmount"`
	EventOverrides  []EventPriceOverride `json:"eventOverrides,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// OverrideForEvent returns the event override matching the event type, or nil
func (c *PricingConfig) OverrideForEvent(eventTypeID int64) *EventPriceOverride {
	for i := range c.EventOverrides {
		if c.EventOverrides[i].EventTypeID == eventTypeID {
			return &c.EventOverrides[i]
		}
	}
	return nil
}

// Validate проверяет целостность конфигурации перед сохранением.
// Ошибки конфигурации относятся к данным администратора зала, а не к вводу клиента.
func (c *PricingConfig) Validate() error {
	if c.HallID <= 0 {
		return &ValidationError{HallID: c.HallID, Field: "hallId", Reason: "hallId must be positive"}
	}
	if !c.PricingMode.IsValid() {
		return &ValidationError{HallID: c.HallID, Field: "pricingMode", Reason: "unknown pricing mode"}
	}
	if !c.CalculationMode.IsValid() {
		return &ValidationError{HallID: c.HallID, Field: "calculationMode", Reason: "unknown calculation mode"}
	}
	if c.InsuranceAmount < 0 {
		return &ValidationError{HallID: c.HallID, Field: "insuranceAmount", Reason: "insuranceAmount must be >= 0"}
	}
	if len(c.SpecialPeriods) > MaxSpecialPeriodsPerConfig {
		return &ValidationError{HallID: c.HallID, Field: "specialPeriods", Reason: "too many special periods"}
	}

	switch c.PricingMode {
	case PricingModeBookingTime:
		if c.UniformRate == nil {
			return &ValidationError{HallID: c.HallID, Field: "uniformRate", Reason: "uniformRate is required for booking_time mode"}
		}
		if err := c.UniformRate.Validate(c.CalculationMode, "uniformRate"); err != nil {
			return c.withHallID(err)
		}

	case PricingModeFixed:
		if c.WeeklySchedule == nil {
			return &ValidationError{HallID: c.HallID, Field: "weeklySchedule", Reason: "weeklySchedule is required for fixed mode"}
		}
		if err := c.WeeklySchedule.Validate(c.CalculationMode); err != nil {
			return c.withHallID(err)
		}
		for i, period := range c.SpecialPeriods {
			if err := period.Validate(c.CalculationMode, specialPeriodField(i)); err != nil {
				return c.withHallID(err)
			}
		}

	case PricingModeEvent:
		if len(c.EventOverrides) == 0 {
			return &ValidationError{HallID: c.HallID, Field: "eventOverrides", Reason: "at least one event override is required for event mode"}
		}
		for i := range c.EventOverrides {
			if err := c.validateOverride(&c.EventOverrides[i], i); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateOverride проверяет одну событийную конфигурацию
func (c *PricingConfig) validateOverride(o *EventPriceOverride, idx int) error {
	field := overrideField(idx)
	if o.EventTypeID <= 0 {
		return &ValidationError{HallID: c.HallID, Field: field + ".eventTypeId", Reason: "eventTypeId must be positive"}
	}
	mode := o.CalculationMode
	if mode == "" {
		mode = c.CalculationMode
	}
	if !mode.IsValid() {
		return &ValidationError{HallID: c.HallID, Field: field + ".calculationMode", Reason: "unknown calculation mode"}
	}
	if o.UniformRate != nil {
		if err := o.UniformRate.Validate(mode, field+".uniformRate"); err != nil {
			return c.withHallID(err)
		}
		return nil
	}
	if o.WeeklySchedule == nil {
		return &ValidationError{HallID: c.HallID, Field: field + ".weeklySchedule", Reason: "weeklySchedule or uniformRate is required"}
	}
	if err := o.WeeklySchedule.Validate(mode); err != nil {
		return c.withHallID(err)
	}
	for i, period := range o.SpecialPeriods {
		if err := period.Validate(mode, field+"."+specialPeriodField(i)); err != nil {
			return c.withHallID(err)
		}
	}
	return nil
}

// withHallID дополняет ошибку валидации идентификатором зала
func (c *PricingConfig) withHallID(err error) error {
	if verr, ok := err.(*ValidationError); ok && verr.HallID == 0 {
		verr.HallID = c.HallID
	}
	return err
}

func specialPeriodField(i int) string {
	return fmt.Sprintf("specialPeriods[%d]", i)
}

func overrideField(i int) string {
	return fmt.Sprintf("eventOverrides[%d]", i)
}

// DateOnly обнуляет время, чтобы сравнивать только даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
