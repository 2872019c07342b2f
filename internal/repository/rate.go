package repository

import (
	"context"

	"currencyrates/internal/models"

	"github.com/shopspring/decimal"
)

// RateFilter selects rates by equality on the set fields. ActiveOnly drops
// rates whose base or quote currency has been soft-deleted.
type RateFilter struct {
	ID            *int64
	CurrencyID    *int64
	BaseID        *int64
	Rate          *decimal.Decimal
	IsCash        *bool
	OperationType *models.OperationType
	ActiveOnly    bool
}

// RateRepository defines the interface for rate-related database operations.
// Reads always join both currencies of a rate.
type RateRepository interface {
	Find(ctx context.Context, filter RateFilter) ([]models.RateDetail, error)
	GetByID(ctx context.Context, id int64) (*models.RateDetail, error)
	Create(ctx context.Context, rate *models.Rate) error
	Update(ctx context.Context, rate *models.Rate, changes models.RateChanges) error
	Delete(ctx context.Context, rate *models.Rate) error
}
