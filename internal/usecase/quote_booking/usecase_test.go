package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avask/HMS-BookingService/internal/domain"
	discountRepo "github.com/avask/HMS-BookingService/internal/infra/storage/discount"
	configRepo "github.com/avask/HMS-BookingService/internal/infra/storage/pricingconfig"
)

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) GetByHall(ctx context.Context, hallID int64) (*domain.PricingConfig, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingConfig), args.Error(1)
}

type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) GetByID(ctx context.Context, id int64) (*domain.SpecialDiscount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialDiscount), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func perPersonConfig(hallID int64, malePrice, femalePrice, insurance float64) *domain.PricingConfig {
	uniform := domain.NewPerPersonSlotRate(malePrice, femalePrice)
	return &domain.PricingConfig{
		HallID:          hallID,
		PricingMode:     domain.PricingModeBookingTime,
		CalculationMode: domain.CalculationModePerPerson,
		UniformRate:     &uniform,
		InsuranceAmount: insurance,
	}
}

func validRequest(hallID int64) *Request {
	return &Request{
		HallID:               hallID,
		SectionIDs:           []int64{1, 2},
		StartDate:            time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:             string(domain.SlotEvening),
		AttendeesType:        string(domain.AttendeesMenAndWomen),
		MaleAttendeesCount:   50,
		FemaleAttendeesCount: 30,
		Services: []domain.ServiceCharge{
			{Title: "Декорации", Price: 200},
		},
		PaidAmount: 3000,
	}
}

func TestExecute_PerPersonQuote(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(perPersonConfig(1, 100, 80, 50), nil)

	req := validRequest(1)
	req.Discount = &DiscountInput{
		Kind:  string(domain.DiscountKindManual),
		Type:  string(domain.DiscountTypePercent),
		Value: 10,
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 7600.0, resp.Subtotal)
	assert.Equal(t, 760.0, resp.DiscountAmount)
	assert.Equal(t, 6840.0, resp.AmountAfterDiscount)
	assert.Equal(t, 1026.0, resp.VATAmount)
	assert.Equal(t, 50.0, resp.InsuranceAmount)
	assert.Equal(t, 7916.0, resp.TotalPayable)
	assert.Equal(t, 4916.0, resp.RemainingAmount)
	assert.Equal(t, domain.DefaultVATPercent, resp.VATPercent)
	require.NotNil(t, resp.DiscountType)
	assert.Equal(t, string(domain.DiscountTypePercent), *resp.DiscountType)

	configs.AssertExpectations(t)
	discounts.AssertNotCalled(t, "GetByID")
}

func TestExecute_SpecialDiscountResolvedFromCatalog(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(perPersonConfig(1, 100, 80, 0), nil)
	discounts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.SpecialDiscount{
			ID:       5,
			Title:    "Сезонная акция",
			Type:     domain.DiscountTypeFixed,
			Value:    500,
			IsActive: true,
		}, nil)

	discountID := int64(5)
	req := validRequest(1)
	req.Discount = &DiscountInput{
		Kind:       string(domain.DiscountKindSpecial),
		DiscountID: &discountID,
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 500.0, resp.DiscountAmount)
	require.NotNil(t, resp.DiscountID)
	assert.Equal(t, int64(5), *resp.DiscountID)

	configs.AssertExpectations(t)
	discounts.AssertExpectations(t)
}

func TestExecute_InactiveSpecialDiscountRejected(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(perPersonConfig(1, 100, 80, 0), nil)
	discounts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.SpecialDiscount{ID: 5, Type: domain.DiscountTypeFixed, Value: 500}, nil)

	discountID := int64(5)
	req := validRequest(1)
	req.Discount = &DiscountInput{
		Kind:       string(domain.DiscountKindSpecial),
		DiscountID: &discountID,
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDiscountInactive)
}

func TestExecute_ConfigNotFound(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(nil, configRepo.ErrConfigNotFound)

	_, err := uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExecute_DiscountNotFound(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(perPersonConfig(1, 100, 80, 0), nil)
	discounts.On("GetByID", mock.Anything, int64(99)).
		Return(nil, discountRepo.ErrDiscountNotFound)

	discountID := int64(99)
	req := validRequest(1)
	req.Discount = &DiscountInput{
		Kind:       string(domain.DiscountKindSpecial),
		DiscountID: &discountID,
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_NoRateConfigured(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	// booking_time без единой ставки - ошибка конфигурации, не нулевая цена
	configs.On("GetByHall", mock.Anything, int64(1)).
		Return(&domain.PricingConfig{
			HallID:          1,
			PricingMode:     domain.PricingModeBookingTime,
			CalculationMode: domain.CalculationModeFixedPrice,
		}, nil)

	_, err := uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrNoRateConfigured)
}

func TestExecute_ValidationFailures(t *testing.T) {
	configs := new(MockConfigRepository)
	discounts := new(MockDiscountRepository)
	uc := NewUseCase(configs, discounts, noopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing sections", func(req *Request) { req.SectionIDs = nil }},
		{"end before start", func(req *Request) {
			req.EndDate = req.StartDate.AddDate(0, 0, -1)
		}},
		{"invalid slot", func(req *Request) { req.TimeSlot = "night" }},
		{"invalid attendees type", func(req *Request) { req.AttendeesType = "children" }},
		{"negative attendee count", func(req *Request) { req.MaleAttendeesCount = -1 }},
		{"vat out of range", func(req *Request) {
			vat := 150.0
			req.VATPercent = &vat
		}},
		{"negative paid amount", func(req *Request) { req.PaidAmount = -1 }},
		{"special discount without id", func(req *Request) {
			req.Discount = &DiscountInput{Kind: string(domain.DiscountKindSpecial)}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(1)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	configs.AssertNotCalled(t, "GetByHall")
	discounts.AssertNotCalled(t, "GetByID")
}
