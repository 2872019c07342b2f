// Package schema translates between the wire representation of currencies
// and rates and the records kept in storage.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"currencyrates/internal/models"

	"github.com/shopspring/decimal"
)

// RatePlaces is the number of fractional digits a rate is stored with
const RatePlaces = 5

// TimeLayout renders timestamps as DD-MM-YYYY HH:MM:SS
const TimeLayout = "02-01-2006 15:04:05"

// Wire values of the currency status
const (
	StatusActive  = "ACT"
	StatusDeleted = "DEL"
)

// Wire values of the rate operation type
const (
	OperationBuy  = "BUY"
	OperationSell = "SELL"
)

var (
	statusEncoding = map[models.CurrencyStatus]string{
		models.CurrencyStatusDeleted: StatusDeleted,
		models.CurrencyStatusActive:  StatusActive,
	}
	statusDecoding = map[string]models.CurrencyStatus{
		StatusDeleted: models.CurrencyStatusDeleted,
		StatusActive:  models.CurrencyStatusActive,
	}

	operationEncoding = map[models.OperationType]string{
		models.OperationTypeBuy:  OperationBuy,
		models.OperationTypeSell: OperationSell,
	}
	operationDecoding = map[string]models.OperationType{
		OperationBuy:  models.OperationTypeBuy,
		OperationSell: models.OperationTypeSell,
	}
)

// EncodeStatus maps a stored status to its wire value
func EncodeStatus(s models.CurrencyStatus) (string, error) {
	v, ok := statusEncoding[s]
	if !ok {
		return "", fieldError("status", fmt.Sprintf("Invalid status value %d.", s))
	}
	return v, nil
}

// DecodeStatus maps a wire status to its stored value. Matching is exact-case.
func DecodeStatus(s string) (models.CurrencyStatus, error) {
	v, ok := statusDecoding[s]
	if !ok {
		return 0, fieldError("status", fmt.Sprintf("Invalid status value %q.", s))
	}
	return v, nil
}

// EncodeOperationType maps a stored operation code to its wire value
func EncodeOperationType(op models.OperationType) (string, error) {
	v, ok := operationEncoding[op]
	if !ok {
		return "", fieldError("operationType", fmt.Sprintf("Invalid operation type %q.", string(op)))
	}
	return v, nil
}

// DecodeOperationType maps a wire operation type to its stored code
func DecodeOperationType(s string) (models.OperationType, error) {
	v, ok := operationDecoding[s]
	if !ok {
		return "", fieldError("operationType", fmt.Sprintf("Invalid operation type %q.", s))
	}
	return v, nil
}

// DecodeRate rounds a rate half-up to RatePlaces fractional digits
func DecodeRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// EncodeRate renders a rate as a plain JSON number
func EncodeRate(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func fieldError(field, message string) *ValidationError {
	e := newValidationError()
	e.Add(field, message)
	return e
}

// Timestamp marshals as a DD-MM-YYYY HH:MM:SS string in UTC
type Timestamp time.Time

// NewTimestamp converts an optional time; nil stays nil and renders as null
func NewTimestamp(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp(*t)
	return &ts
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimeLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Links is the metadata block of detail views
type Links struct {
	Self       string `json:"self" example:"http://localhost:8080/api/v1/currencies/1"`
	Collection string `json:"collection" example:"http://localhost:8080/api/v1/currencies"`
}

// Linker builds absolute resource URLs from the public base URL
type Linker struct {
	base string
}

// NewLinker creates a Linker; a trailing slash on baseURL is ignored
func NewLinker(baseURL string) Linker {
	return Linker{base: strings.TrimRight(baseURL, "/") + "/api/v1"}
}

// Currency returns the links of a currency resource
func (l Linker) Currency(id int64) Links {
	return l.links("currencies", id)
}

// Rate returns the links of a rate resource
func (l Linker) Rate(id int64) Links {
	return l.links("rates", id)
}

func (l Linker) links(collection string, id int64) Links {
	c := l.base + "/" + collection
	return Links{
		Self:       c + "/" + strconv.FormatInt(id, 10),
		Collection: c,
	}
}
