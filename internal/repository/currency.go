package repository

import (
	"context"

	"currencyrates/internal/models"
)

// CurrencyFilter selects currencies by equality on the set fields.
// Codes matches any of the listed codes.
type CurrencyFilter struct {
	ID     *int64
	Status *models.CurrencyStatus
	Code   *string
	Name   *string
	Codes  []string
}

// CurrencyRepository defines the interface for currency-related database operations
type CurrencyRepository interface {
	Find(ctx context.Context, filter CurrencyFilter) ([]models.Currency, error)
	GetByID(ctx context.Context, id int64) (*models.Currency, error)
	Create(ctx context.Context, currency *models.Currency) error
	Update(ctx context.Context, currency *models.Currency, changes models.CurrencyChanges) error
	SoftDelete(ctx context.Context, currency *models.Currency) error
}
