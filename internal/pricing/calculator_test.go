package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avask/HMS-BookingService/internal/domain"
)

func TestCalculate_PerPerson_FullBreakdown(t *testing.T) {
	rate := domain.NewPerPersonSlotRate(100, 80)
	req := &domain.BookingRequest{
		AttendeesType:        domain.AttendeesMenAndWomen,
		MaleAttendeesCount:   50,
		FemaleAttendeesCount: 30,
		Services: []domain.ServiceCharge{
			{Title: "Декорации", Price: 120},
			{Title: "Фотограф", Price: 80},
		},
		Discount:   domain.ManualDiscount(domain.DiscountTypePercent, 10),
		VATPercent: 15,
		PaidAmount: 3000,
	}

	breakdown, err := Calculate(rate, domain.CalculationModePerPerson, 50, req)
	require.NoError(t, err)

	// 50*100 + 30*80 + 200 услуг
	assert.Equal(t, 7600.0, breakdown.Subtotal)
	assert.Equal(t, 760.0, breakdown.DiscountAmount)
	assert.Equal(t, 6840.0, breakdown.AmountAfterDiscount)
	assert.Equal(t, 1026.0, breakdown.VATAmount)
	assert.Equal(t, 50.0, breakdown.InsuranceAmount)
	assert.Equal(t, 7916.0, breakdown.TotalPayable)
	assert.Equal(t, 4916.0, breakdown.RemainingAmount)
}

func TestCalculate_FixedPrice_NoDiscount(t *testing.T) {
	rate := domain.NewFixedSlotRate(5000)
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.NoDiscount(),
		VATPercent:    15,
		PaidAmount:    5000,
	}

	breakdown, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.DiscountAmount)
	assert.Equal(t, 5000.0, breakdown.AmountAfterDiscount)
	assert.Equal(t, 750.0, breakdown.VATAmount)
	assert.Equal(t, 5750.0, breakdown.TotalPayable)
	assert.Equal(t, 750.0, breakdown.RemainingAmount)
}

func TestCalculate_FixedDiscount_ClampedToSubtotal(t *testing.T) {
	rate := domain.NewFixedSlotRate(1000)
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.ManualDiscount(domain.DiscountTypeFixed, 5000),
		VATPercent:    15,
	}

	breakdown, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.NoError(t, err)

	// Скидка не превышает subtotal, итог не уходит в минус
	assert.Equal(t, 1000.0, breakdown.DiscountAmount)
	assert.Equal(t, 0.0, breakdown.AmountAfterDiscount)
	assert.Equal(t, 0.0, breakdown.VATAmount)
	assert.Equal(t, 0.0, breakdown.TotalPayable)
}

func TestCalculate_NegativeDiscountValue_Ignored(t *testing.T) {
	rate := domain.NewFixedSlotRate(1000)
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.ManualDiscount(domain.DiscountTypeFixed, -100),
		VATPercent:    0,
	}

	breakdown, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.DiscountAmount)
	assert.Equal(t, 1000.0, breakdown.TotalPayable)
}

func TestCalculate_PerPerson_CountsFollowAttendeesType(t *testing.T) {
	rate := domain.NewPerPersonSlotRate(100, 80)

	tests := []struct {
		name          string
		attendeesType domain.AttendeesType
		wantSubtotal  float64
	}{
		{"men only ignores female count", domain.AttendeesMen, 1000.0},
		{"women only ignores male count", domain.AttendeesWomen, 800.0},
		{"mixed counts both", domain.AttendeesMenAndWomen, 1800.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &domain.BookingRequest{
				AttendeesType:        tt.attendeesType,
				MaleAttendeesCount:   10,
				FemaleAttendeesCount: 10,
				Discount:             domain.NoDiscount(),
			}

			breakdown, err := Calculate(rate, domain.CalculationModePerPerson, 0, req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, breakdown.Subtotal)
		})
	}
}

func TestCalculate_Overpayment_NegativeRemaining(t *testing.T) {
	rate := domain.NewFixedSlotRate(1000)
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.NoDiscount(),
		VATPercent:    0,
		PaidAmount:    1500,
	}

	breakdown, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.NoError(t, err)
	assert.Equal(t, -500.0, breakdown.RemainingAmount)
}

func TestCalculate_MixedRateShape_Rejected(t *testing.T) {
	fixed := 5000.0
	male := 100.0
	female := 80.0
	rate := domain.SlotRate{FixedPrice: &fixed, MalePrice: &male, FemalePrice: &female}
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.NoDiscount(),
	}

	_, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCalculate_Rounding_HalfUp(t *testing.T) {
	// 333.33 * 15% = 49.9995 -> 50.00
	rate := domain.NewFixedSlotRate(333.33)
	req := &domain.BookingRequest{
		AttendeesType: domain.AttendeesMenAndWomen,
		Discount:      domain.NoDiscount(),
		VATPercent:    15,
	}

	breakdown, err := Calculate(rate, domain.CalculationModeFixedPrice, 0, req)
	require.NoError(t, err)
	assert.Equal(t, 50.0, breakdown.VATAmount)
	assert.Equal(t, 383.33, breakdown.TotalPayable)
}

func TestCalculate_Idempotent(t *testing.T) {
	rate := domain.NewPerPersonSlotRate(100, 80)
	req := &domain.BookingRequest{
		AttendeesType:        domain.AttendeesMenAndWomen,
		MaleAttendeesCount:   50,
		FemaleAttendeesCount: 30,
		Discount:             domain.ManualDiscount(domain.DiscountTypePercent, 10),
		VATPercent:           15,
		PaidAmount:           3000,
	}

	first, err := Calculate(rate, domain.CalculationModePerPerson, 50, req)
	require.NoError(t, err)
	second, err := Calculate(rate, domain.CalculationModePerPerson, 50, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerifyStoredTotal(t *testing.T) {
	t.Run("matching totals pass", func(t *testing.T) {
		assert.NoError(t, VerifyStoredTotal(42, 7916.0, 7916.0, false))
	})

	t.Run("mismatch returns typed error", func(t *testing.T) {
		err := VerifyStoredTotal(42, 7916.0, 8100.0, false)
		require.Error(t, err)

		var mismatch *domain.PriceMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, int64(42), mismatch.BookingID)
		assert.Equal(t, 7916.0, mismatch.StoredTotal)
		assert.Equal(t, 8100.0, mismatch.ComputedTotal)
	})

	t.Run("reset bypasses the check", func(t *testing.T) {
		assert.NoError(t, VerifyStoredTotal(42, 7916.0, 8100.0, true))
	})
}
