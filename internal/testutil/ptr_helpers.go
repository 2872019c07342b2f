package testutil

import (
	"currencyrates/internal/models"

	"github.com/shopspring/decimal"
)

// String returns a pointer to the given string
func String(s string) *string {
	return &s
}

// Bool returns a pointer to the given bool
func Bool(b bool) *bool {
	return &b
}

// Int64 returns a pointer to the given int64
func Int64(i int64) *int64 {
	return &i
}

// Decimal returns a pointer to the decimal parsed from s
func Decimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Status returns a pointer to the given currency status
func Status(s models.CurrencyStatus) *models.CurrencyStatus {
	return &s
}

// Operation returns a pointer to the given operation type
func Operation(op models.OperationType) *models.OperationType {
	return &op
}
