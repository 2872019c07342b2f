package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the stored single-character code of a rate direction
type OperationType string

const (
	OperationTypeBuy  OperationType = "b"
	OperationTypeSell OperationType = "s"
)

// Rate represents an exchange rate between a base and a quote currency
type Rate struct {
	ID            int64           `db:"id"`
	OperationType OperationType   `db:"operation_type"`
	Rate          decimal.Decimal `db:"rate"`
	IsCash        bool            `db:"is_cash"`
	CurrencyID    int64           `db:"currency_id"`
	BaseID        int64           `db:"base_id"`
	Created       time.Time       `db:"created"`
	Updated       *time.Time      `db:"updated"`
}

// RateChanges lists the rate fields an update may touch.
// Currency linkage is fixed at creation and has no entry here.
type RateChanges struct {
	OperationType *OperationType
	Rate          *decimal.Decimal
	IsCash        *bool
}

// IsEmpty reports whether no field is set
func (c RateChanges) IsEmpty() bool {
	return c.OperationType == nil && c.Rate == nil && c.IsCash == nil
}

// Apply copies the set fields onto the rate
func (c RateChanges) Apply(rate *Rate) {
	if c.OperationType != nil {
		rate.OperationType = *c.OperationType
	}
	if c.Rate != nil {
		rate.Rate = *c.Rate
	}
	if c.IsCash != nil {
		rate.IsCash = *c.IsCash
	}
}

// CurrencyRef is the slice of a currency joined onto a rate
type CurrencyRef struct {
	ID     int64
	Code   string
	Status CurrencyStatus
}

// RateDetail is a rate together with both of its currencies
type RateDetail struct {
	Rate
	Currency CurrencyRef
	Base     CurrencyRef
}
