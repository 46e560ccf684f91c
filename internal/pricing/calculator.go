package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/avask/HMS-BookingService/internal/domain"
)

// Денежная арифметика идёт на decimal, чтобы исключить дрейф двоичной
// плавающей точки; наружу раскладка отдаётся как float64, округлённый до
// 2 знаков (round-half-up).
const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// Calculate вычисляет полную денежную раскладку по разрешённой ставке.
//
// Subtotal:
//   - fixed_price: fixedPrice + сумма дополнительных услуг
//   - per_person:  male*malePrice + female*femalePrice + услуги; счётчики,
//     не относящиеся к attendeesType, принудительно обнуляются
//
// Скидка: percent - от subtotal; fixed - зажимается в [0, subtotal].
// Дальше: amountAfterDiscount (не ниже 0), НДС, страховой депозит из
// конфигурации зала, итог и остаток к оплате (может быть отрицательным
// при переплате).
func Calculate(rate domain.SlotRate, calcMode domain.CalculationMode, insuranceAmount float64, req *domain.BookingRequest) (domain.CostBreakdown, error) {
	subtotal, err := calculateSubtotal(rate, calcMode, req)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	subtotal = roundMoney(subtotal)

	discount := roundMoney(discountAmount(subtotal, resolveDiscount(req.Discount)))

	afterDiscount := subtotal.Sub(discount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	vat := roundMoney(afterDiscount.Mul(decimal.NewFromFloat(req.VATPercent)).Div(hundred))
	insurance := roundMoney(decimal.NewFromFloat(insuranceAmount))

	total := afterDiscount.Add(vat).Add(insurance)
	remaining := total.Sub(roundMoney(decimal.NewFromFloat(req.PaidAmount)))

	return domain.CostBreakdown{
		Subtotal:            subtotal.InexactFloat64(),
		DiscountAmount:      discount.InexactFloat64(),
		AmountAfterDiscount: afterDiscount.InexactFloat64(),
		VATAmount:           vat.InexactFloat64(),
		InsuranceAmount:     insurance.InexactFloat64(),
		TotalPayable:        total.InexactFloat64(),
		RemainingAmount:     remaining.InexactFloat64(),
	}, nil
}

// calculateSubtotal вычисляет базовую стоимость по форме ставки
func calculateSubtotal(rate domain.SlotRate, calcMode domain.CalculationMode, req *domain.BookingRequest) (decimal.Decimal, error) {
	if err := rate.Validate(calcMode, "rate"); err != nil {
		return decimal.Zero, err
	}

	servicesTotal := decimal.Zero
	for _, svc := range req.Services {
		servicesTotal = servicesTotal.Add(decimal.NewFromFloat(svc.Price))
	}

	if calcMode == domain.CalculationModeFixedPrice {
		return decimal.NewFromFloat(*rate.FixedPrice).Add(servicesTotal), nil
	}

	maleCount, femaleCount := applicableCounts(req)
	maleTotal := decimal.NewFromInt(int64(maleCount)).Mul(decimal.NewFromFloat(*rate.MalePrice))
	femaleTotal := decimal.NewFromInt(int64(femaleCount)).Mul(decimal.NewFromFloat(*rate.FemalePrice))

	return maleTotal.Add(femaleTotal).Add(servicesTotal), nil
}

// applicableCounts обнуляет счётчики гостей, не относящиеся к составу
// мероприятия, чтобы исключить двойной учёт (например, для attendeesType=men
// женский счётчик игнорируется независимо от того, что передал вызывающий)
func applicableCounts(req *domain.BookingRequest) (male, female int) {
	switch req.AttendeesType {
	case domain.AttendeesMen:
		return req.MaleAttendeesCount, 0
	case domain.AttendeesWomen:
		return 0, req.FemaleAttendeesCount
	default:
		return req.MaleAttendeesCount, req.FemaleAttendeesCount
	}
}

// resolveDiscount сводит выбор скидки к паре {type, value}.
// Выбор kind=special к этому моменту уже разрешён вызывающим кодом:
// Type и Value заполнены из справочника скидок, DiscountID сохранён
// только для аудита.
func resolveDiscount(sel domain.DiscountSelection) domain.ResolvedDiscount {
	switch sel.Kind {
	case domain.DiscountKindManual, domain.DiscountKindSpecial:
		return domain.ResolvedDiscount{Type: sel.Type, Value: sel.Value}
	default:
		return domain.ResolvedDiscount{Type: domain.DiscountTypeFixed, Value: 0}
	}
}

// discountAmount вычисляет сумму скидки.
// Фиксированная скидка зажимается в [0, subtotal]: скидка не может превышать
// уменьшаемую сумму. Это определённое поведение, а не ошибка.
func discountAmount(subtotal decimal.Decimal, discount domain.ResolvedDiscount) decimal.Decimal {
	value := decimal.NewFromFloat(discount.Value)
	if value.IsNegative() {
		return decimal.Zero
	}

	if discount.Type == domain.DiscountTypePercent {
		return subtotal.Mul(value).Div(hundred)
	}

	if value.GreaterThan(subtotal) {
		return subtotal
	}
	return value
}

// roundMoney округляет до 2 знаков, half-up
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

// VerifyStoredTotal реализует правило согласованности цены при редактировании:
// если ценообразующие поля подтверждённой брони изменились и сохранённый итог
// не совпадает со свежерассчитанным, пересчёт требует явного подтверждения.
// Несовпадение поверхностно отличимо от арифметики - *domain.PriceMismatchError.
func VerifyStoredTotal(bookingID int64, storedTotal, computedTotal float64, resetRequested bool) error {
	if resetRequested {
		return nil
	}

	stored := roundMoney(decimal.NewFromFloat(storedTotal))
	computed := roundMoney(decimal.NewFromFloat(computedTotal))
	if !stored.Equal(computed) {
		return &domain.PriceMismatchError{
			BookingID:     bookingID,
			StoredTotal:   stored.InexactFloat64(),
			ComputedTotal: computed.InexactFloat64(),
		}
	}
	return nil
}
