package service_test

import (
	"context"

	"currencyrates/internal/models"
	"currencyrates/internal/repository"

	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) Find(ctx context.Context, filter repository.CurrencyFilter) ([]models.Currency, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) GetByID(ctx context.Context, id int64) (*models.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Update(ctx context.Context, currency *models.Currency, changes models.CurrencyChanges) error {
	args := m.Called(ctx, currency, changes)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SoftDelete(ctx context.Context, currency *models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) Find(ctx context.Context, filter repository.RateFilter) ([]models.RateDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RateDetail), args.Error(1)
}

func (m *MockRateRepository) GetByID(ctx context.Context, id int64) (*models.RateDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RateDetail), args.Error(1)
}

func (m *MockRateRepository) Create(ctx context.Context, rate *models.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) Update(ctx context.Context, rate *models.Rate, changes models.RateChanges) error {
	args := m.Called(ctx, rate, changes)
	return args.Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, rate *models.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func activeFilterByCode(code string) repository.CurrencyFilter {
	active := models.CurrencyStatusActive
	return repository.CurrencyFilter{Code: &code, Status: &active}
}
