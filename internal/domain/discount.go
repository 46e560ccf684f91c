package domain

// DiscountKind represents which branch of the discount selection is active
type DiscountKind string

const (
	// DiscountKindNone no discount applied
	DiscountKindNone DiscountKind = "none"
	// DiscountKindManual discount entered by the manager (percent or fixed)
	DiscountKindManual DiscountKind = "manual"
	// DiscountKindSpecial reference to a stored special discount, resolved before calculation
	DiscountKindSpecial DiscountKind = "special"
)

// DiscountType represents how a discount value is applied
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// IsValid returns true if the discount type is one of the known values
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercent || t == DiscountTypeFixed
}

// DiscountSelection tagged union выбора скидки в заявке на бронирование.
// Для kind=manual заполняются Type и Value, для kind=special - DiscountID,
// который вызывающий код разрешает в пару {type, value} до расчёта стоимости.
type DiscountSelection struct {
	Kind       DiscountKind `json:"kind"`
	Type       DiscountType `json:"type,omitempty"`
	Value      float64      `json:"value,omitempty"`
	DiscountID *int64       `json:"discountId,omitempty"`
}

// NoDiscount returns the empty discount selection
func NoDiscount() DiscountSelection {
	return DiscountSelection{Kind: DiscountKindNone}
}

// ManualDiscount returns a manual discount selection
func ManualDiscount(discountType DiscountType, value float64) DiscountSelection {
	return DiscountSelection{Kind: DiscountKindManual, Type: discountType, Value: value}
}

// SpecialDiscountRef returns a reference to a stored special discount
func SpecialDiscountRef(discountID int64) DiscountSelection {
	return DiscountSelection{Kind: DiscountKindSpecial, DiscountID: &discountID}
}

// ResolvedDiscount пара {type, value}, к которой сводится любой выбор скидки
// перед расчётом. Для kind=none возвращается нулевая фиксированная скидка.
type ResolvedDiscount struct {
	Type  DiscountType
	Value float64
}

// SpecialDiscount stored discount managed by administrators, e.g. a seasonal promotion
type SpecialDiscount struct {
	ID       int64
	Title    string
	Type     DiscountType
	Value    float64
	IsActive bool
}
