package schema

import (
	"currencyrates/internal/models"
	"currencyrates/internal/validation"

	"github.com/shopspring/decimal"
)

// Wire field names of a rate
const (
	RateFieldID            = "id"
	RateFieldOperationType = "operationType"
	RateFieldRate          = "rate"
	RateFieldIsCash        = "isCash"
	RateFieldBaseCurrency  = "baseCurrency"
	RateFieldCurrency      = "currency"
)

// RateResponse is the basic rate view used by lists and updates
type RateResponse struct {
	ID            int64   `json:"id" example:"1"`
	Currency      string  `json:"currency" example:"EUR"`
	BaseCurrency  string  `json:"baseCurrency" example:"USD"`
	Rate          float64 `json:"rate" example:"0.92"`
	OperationType string  `json:"operationType" example:"BUY"`
	IsCash        bool    `json:"isCash" example:"true"`
}

// RateDetailResponse is the single rate view with nested currencies
type RateDetailResponse struct {
	ID            int64                   `json:"id" example:"1"`
	Currency      CurrencyMinimalResponse `json:"currency"`
	BaseCurrency  CurrencyMinimalResponse `json:"baseCurrency"`
	Rate          float64                 `json:"rate" example:"0.92"`
	OperationType string                  `json:"operationType" example:"BUY"`
	IsCash        bool                    `json:"isCash" example:"true"`
	Created       Timestamp               `json:"created" swaggertype:"string" example:"16-10-2026 10:00:00"`
	Updated       *Timestamp              `json:"updated" swaggertype:"string" example:"16-10-2026 11:30:00"`
	Metadata      Links                   `json:"metadata"`
}

// RateListResponse is the rate collection envelope
type RateListResponse struct {
	Next  *string        `json:"next" swaggertype:"string"`
	Rates []RateResponse `json:"rates"`
}

// RateUpdatedResponse reports a successful rate update
type RateUpdatedResponse struct {
	Status string       `json:"status" example:"UPDATED"`
	Record RateResponse `json:"record"`
}

// RateCreate is a validated create request whose currencies are still codes
type RateCreate struct {
	OperationType models.OperationType
	Rate          decimal.Decimal
	IsCash        bool
	BaseCode      string
	CurrencyCode  string
}

// RateQuery holds the decoded list filters
type RateQuery struct {
	CurrencyCode  *string
	BaseCode      *string
	Rate          *decimal.Decimal
	IsCash        *bool
	OperationType *models.OperationType
}

// IsEmpty reports whether no filter is set
func (q RateQuery) IsEmpty() bool {
	return q.CurrencyCode == nil && q.BaseCode == nil && q.Rate == nil &&
		q.IsCash == nil && q.OperationType == nil
}

type rateCreateInput struct {
	OperationType *string          `json:"operationType" validate:"required,oneof=BUY SELL"`
	Rate          *decimal.Decimal `json:"rate" validate:"required,gt=0,lt=10000000"`
	IsCash        *bool            `json:"isCash" validate:"required"`
	BaseCurrency  *string          `json:"baseCurrency" validate:"required,currencycode"`
	Currency      *string          `json:"currency" validate:"required,currencycode"`
}

type rateRecordInput struct {
	BaseID     int64 `json:"baseId" validate:"required,gt=0"`
	CurrencyID int64 `json:"currencyId" validate:"required,gt=0,nefield=BaseID"`
}

type rateUpdateInput struct {
	OperationType *string          `json:"operationType" validate:"omitempty,oneof=BUY SELL"`
	Rate          *decimal.Decimal `json:"rate" validate:"omitempty,gt=0,lt=10000000"`
	IsCash        *bool            `json:"isCash"`
}

type rateQueryInput struct {
	OperationType *string          `json:"operationType" validate:"omitempty,oneof=BUY SELL"`
	Rate          *decimal.Decimal `json:"rate" validate:"omitempty,gt=0,lt=10000000"`
	IsCash        *bool            `json:"isCash"`
	BaseCurrency  *string          `json:"baseCurrency" validate:"omitempty,currencycode"`
	Currency      *string          `json:"currency" validate:"omitempty,currencycode"`
}

// DecodeRateCreate validates a create request. Base and quote codes must
// differ.
func DecodeRateCreate(p Payload) (RateCreate, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := rateCreateInput{
		OperationType: r.String(RateFieldOperationType),
		Rate:          r.Decimal(RateFieldRate),
		IsCash:        r.Bool(RateFieldIsCash),
		BaseCurrency:  r.String(RateFieldBaseCurrency),
		Currency:      r.String(RateFieldCurrency),
	}
	errs.merge(validation.Validator().Struct(in))
	if !errs.Has(RateFieldCurrency) && !errs.Has(RateFieldBaseCurrency) &&
		in.Currency != nil && in.BaseCurrency != nil && *in.Currency == *in.BaseCurrency {
		errs.Add(RateFieldCurrency, "Must differ from baseCurrency.")
	}
	if err := errs.err(); err != nil {
		return RateCreate{}, err
	}

	op, err := DecodeOperationType(*in.OperationType)
	if err != nil {
		return RateCreate{}, err
	}
	return RateCreate{
		OperationType: op,
		Rate:          *in.Rate,
		IsCash:        *in.IsCash,
		BaseCode:      *in.BaseCurrency,
		CurrencyCode:  *in.Currency,
	}, nil
}

// Record builds the storage record once both codes resolved to ids
func (c RateCreate) Record(baseID, currencyID int64) (models.Rate, error) {
	errs := newValidationError()
	errs.merge(validation.Validator().Struct(rateRecordInput{BaseID: baseID, CurrencyID: currencyID}))
	if err := errs.err(); err != nil {
		return models.Rate{}, err
	}
	return models.Rate{
		OperationType: c.OperationType,
		Rate:          c.Rate,
		IsCash:        c.IsCash,
		BaseID:        baseID,
		CurrencyID:    currencyID,
	}, nil
}

// DecodeRateUpdate validates a partial update. Only operationType, rate and
// isCash are read; currency linkage cannot change.
func DecodeRateUpdate(p Payload) (models.RateChanges, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := rateUpdateInput{
		OperationType: r.String(RateFieldOperationType),
		Rate:          r.Decimal(RateFieldRate),
		IsCash:        r.Bool(RateFieldIsCash),
	}
	errs.merge(validation.Validator().Struct(in))
	if err := errs.err(); err != nil {
		return models.RateChanges{}, err
	}

	changes := models.RateChanges{Rate: in.Rate, IsCash: in.IsCash}
	if in.OperationType != nil {
		op, err := DecodeOperationType(*in.OperationType)
		if err != nil {
			return models.RateChanges{}, err
		}
		changes.OperationType = &op
	}
	return changes, nil
}

// DecodeRateQuery validates list filters
func DecodeRateQuery(p Payload) (RateQuery, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := rateQueryInput{
		OperationType: r.String(RateFieldOperationType),
		Rate:          r.Decimal(RateFieldRate),
		IsCash:        r.Bool(RateFieldIsCash),
		BaseCurrency:  r.String(RateFieldBaseCurrency),
		Currency:      r.String(RateFieldCurrency),
	}
	errs.merge(validation.Validator().Struct(in))
	if err := errs.err(); err != nil {
		return RateQuery{}, err
	}

	q := RateQuery{
		CurrencyCode: in.Currency,
		BaseCode:     in.BaseCurrency,
		Rate:         in.Rate,
		IsCash:       in.IsCash,
	}
	if in.OperationType != nil {
		op, err := DecodeOperationType(*in.OperationType)
		if err != nil {
			return RateQuery{}, err
		}
		q.OperationType = &op
	}
	return q, nil
}

// NewRateResponse encodes the basic view
func NewRateResponse(r models.RateDetail) (RateResponse, error) {
	op, err := EncodeOperationType(r.OperationType)
	if err != nil {
		return RateResponse{}, err
	}
	return RateResponse{
		ID:            r.ID,
		Currency:      r.Currency.Code,
		BaseCurrency:  r.Base.Code,
		Rate:          EncodeRate(r.Rate.Rate),
		OperationType: op,
		IsCash:        r.IsCash,
	}, nil
}

// NewRateDetailResponse encodes the single rate view
func NewRateDetailResponse(r models.RateDetail, links Linker) (RateDetailResponse, error) {
	op, err := EncodeOperationType(r.OperationType)
	if err != nil {
		return RateDetailResponse{}, err
	}
	return RateDetailResponse{
		ID:            r.ID,
		Currency:      CurrencyMinimalResponse{ID: r.Currency.ID, Code: r.Currency.Code},
		BaseCurrency:  CurrencyMinimalResponse{ID: r.Base.ID, Code: r.Base.Code},
		Rate:          EncodeRate(r.Rate.Rate),
		OperationType: op,
		IsCash:        r.IsCash,
		Created:       Timestamp(r.Created),
		Updated:       NewTimestamp(r.Updated),
		Metadata:      links.Rate(r.ID),
	}, nil
}

// NewRateListResponse wraps encoded rates in the collection envelope
func NewRateListResponse(rates []models.RateDetail) (RateListResponse, error) {
	out := RateListResponse{Rates: make([]RateResponse, 0, len(rates))}
	for _, r := range rates {
		resp, err := NewRateResponse(r)
		if err != nil {
			return RateListResponse{}, err
		}
		out.Rates = append(out.Rates, resp)
	}
	return out, nil
}
