package models

import "time"

// CurrencyStatus is the stored lifecycle marker of a currency
type CurrencyStatus int16

const (
	// CurrencyStatusDeleted marks a soft-deleted currency
	CurrencyStatusDeleted CurrencyStatus = 0
	// CurrencyStatusActive marks a currency visible to the API
	CurrencyStatusActive CurrencyStatus = 1
)

// Currency represents a currency row in the system
type Currency struct {
	ID      int64          `db:"id"`
	Status  CurrencyStatus `db:"status"`
	Name    string         `db:"name"`
	Code    string         `db:"code"`
	Created time.Time      `db:"created"`
	Updated *time.Time     `db:"updated"`
}

// IsActive reports whether the currency has not been soft-deleted
func (c *Currency) IsActive() bool {
	return c.Status == CurrencyStatusActive
}

// CurrencyChanges lists the currency fields an update may touch.
// A nil field is left unchanged.
type CurrencyChanges struct {
	Name   *string
	Code   *string
	Status *CurrencyStatus
}

// IsEmpty reports whether no field is set
func (c CurrencyChanges) IsEmpty() bool {
	return c.Name == nil && c.Code == nil && c.Status == nil
}

// Apply copies the set fields onto the currency
func (c CurrencyChanges) Apply(currency *Currency) {
	if c.Name != nil {
		currency.Name = *c.Name
	}
	if c.Code != nil {
		currency.Code = *c.Code
	}
	if c.Status != nil {
		currency.Status = *c.Status
	}
}
