// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"currencyrates/internal/config"
	"currencyrates/internal/models"
	"currencyrates/internal/repository"
	"currencyrates/internal/repository/postgres"
	"currencyrates/internal/testutil/db"
	"currencyrates/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// TestContext holds common test dependencies
type TestContext struct {
	T            *testing.T
	DB           *sql.DB
	Config       *config.Config
	CurrencyRepo repository.CurrencyRepository
	RateRepo     repository.RateRepository
}

// NewTestContext creates a new test context backed by a freshly migrated
// test database
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)

	tc := &TestContext{
		T:            t,
		DB:           testDB,
		Config:       cfg,
		CurrencyRepo: postgres.NewCurrencyRepository(testDB),
		RateRepo:     postgres.NewRateRepository(testDB),
	}

	t.Cleanup(func() {
		tc.cleanup()
	})

	return tc
}

// cleanup performs necessary cleanup after tests
func (tc *TestContext) cleanup() {
	if tc.DB != nil {
		if err := db.CleanupTestDB(tc.DB); err != nil {
			tc.T.Errorf("Failed to cleanup test database: %v", err)
		}
		tc.DB.Close()
	}
}

// CreateTestCurrency creates an ACTIVE currency and returns it
func (tc *TestContext) CreateTestCurrency(code, name string) *models.Currency {
	tc.T.Helper()

	currency := &models.Currency{
		Code: code,
		Name: name,
	}

	err := tc.CurrencyRepo.Create(context.Background(), currency)
	require.NoError(tc.T, err, "Failed to create test currency")

	return currency
}

// CreateTestRate creates a rate from base to quote and returns it
func (tc *TestContext) CreateTestRate(base, quote *models.Currency, op models.OperationType, rate string, isCash bool) *models.Rate {
	tc.T.Helper()

	r := &models.Rate{
		OperationType: op,
		Rate:          decimal.RequireFromString(rate),
		IsCash:        isCash,
		BaseID:        base.ID,
		CurrencyID:    quote.ID,
	}

	err := tc.RateRepo.Create(context.Background(), r)
	require.NoError(tc.T, err, "Failed to create test rate")

	return r
}
