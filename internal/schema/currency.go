package schema

import (
	"currencyrates/internal/models"
	"currencyrates/internal/validation"
)

// Wire field names of a currency
const (
	CurrencyFieldID     = "id"
	CurrencyFieldStatus = "status"
	CurrencyFieldName   = "name"
	CurrencyFieldCode   = "code"
)

// CurrencyResponse is the basic currency view used by lists and updates
type CurrencyResponse struct {
	ID     int64  `json:"id" example:"1"`
	Status string `json:"status" example:"ACT"`
	Code   string `json:"code" example:"USD"`
	Name   string `json:"name" example:"US Dollar"`
}

// CurrencyDetailResponse is the single currency view
type CurrencyDetailResponse struct {
	ID       int64      `json:"id" example:"1"`
	Status   string     `json:"status" example:"ACT"`
	Name     string     `json:"name" example:"US Dollar"`
	Code     string     `json:"code" example:"USD"`
	Created  Timestamp  `json:"created" swaggertype:"string" example:"16-10-2026 10:00:00"`
	Updated  *Timestamp `json:"updated" swaggertype:"string" example:"16-10-2026 11:30:00"`
	Metadata Links      `json:"metadata"`
}

// CurrencyMinimalResponse identifies a currency nested in another view
type CurrencyMinimalResponse struct {
	ID   int64  `json:"id" example:"1"`
	Code string `json:"code" example:"USD"`
}

// CurrencyListResponse is the currency collection envelope
type CurrencyListResponse struct {
	Next       *string            `json:"next" swaggertype:"string"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// CurrencyUpdatedResponse reports a successful currency update
type CurrencyUpdatedResponse struct {
	Status string           `json:"status" example:"UPDATED"`
	Record CurrencyResponse `json:"record"`
}

// CreatedResponse reports the id assigned to a new record
type CreatedResponse struct {
	Status string `json:"status" example:"CREATED"`
	ID     int64  `json:"id" example:"1"`
}

// CurrencyQuery holds the decoded list filters
type CurrencyQuery struct {
	Code *string
	Name *string
}

type currencyCreateInput struct {
	Name *string `json:"name" validate:"required,min=2,max=20,nospaces"`
	Code *string `json:"code" validate:"required,currencycode"`
}

type currencyUpdateInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=20,nospaces"`
	Code   *string `json:"code" validate:"omitempty,currencycode"`
	Status *string `json:"status" validate:"omitempty,oneof=ACT DEL"`
}

type currencyQueryInput struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=20,nospaces"`
	Code *string `json:"code" validate:"omitempty,currencycode"`
}

// DecodeCurrencyCreate validates a create request. The returned record is
// always ACTIVE.
func DecodeCurrencyCreate(p Payload) (models.Currency, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := currencyCreateInput{
		Name: r.String(CurrencyFieldName),
		Code: r.String(CurrencyFieldCode),
	}
	errs.merge(validation.Validator().Struct(in))
	if err := errs.err(); err != nil {
		return models.Currency{}, err
	}

	return models.Currency{
		Status: models.CurrencyStatusActive,
		Name:   *in.Name,
		Code:   *in.Code,
	}, nil
}

// DecodeCurrencyUpdate validates a partial update. Only name, code and
// status are read.
func DecodeCurrencyUpdate(p Payload) (models.CurrencyChanges, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := currencyUpdateInput{
		Name:   r.String(CurrencyFieldName),
		Code:   r.String(CurrencyFieldCode),
		Status: r.String(CurrencyFieldStatus),
	}
	errs.merge(validation.Validator().Struct(in))
	if err := errs.err(); err != nil {
		return models.CurrencyChanges{}, err
	}

	changes := models.CurrencyChanges{Name: in.Name, Code: in.Code}
	if in.Status != nil {
		status, err := DecodeStatus(*in.Status)
		if err != nil {
			return models.CurrencyChanges{}, err
		}
		changes.Status = &status
	}
	return changes, nil
}

// DecodeCurrencyQuery validates list filters
func DecodeCurrencyQuery(p Payload) (CurrencyQuery, error) {
	errs := newValidationError()
	r := reader{payload: p, errs: errs}
	in := currencyQueryInput{
		Name: r.String(CurrencyFieldName),
		Code: r.String(CurrencyFieldCode),
	}
	errs.merge(validation.Validator().Struct(in))
	if err := errs.err(); err != nil {
		return CurrencyQuery{}, err
	}
	return CurrencyQuery{Code: in.Code, Name: in.Name}, nil
}

// NewCurrencyResponse encodes the basic view
func NewCurrencyResponse(c models.Currency) (CurrencyResponse, error) {
	status, err := EncodeStatus(c.Status)
	if err != nil {
		return CurrencyResponse{}, err
	}
	return CurrencyResponse{
		ID:     c.ID,
		Status: status,
		Code:   c.Code,
		Name:   c.Name,
	}, nil
}

// NewCurrencyDetailResponse encodes the single currency view
func NewCurrencyDetailResponse(c models.Currency, links Linker) (CurrencyDetailResponse, error) {
	status, err := EncodeStatus(c.Status)
	if err != nil {
		return CurrencyDetailResponse{}, err
	}
	return CurrencyDetailResponse{
		ID:       c.ID,
		Status:   status,
		Name:     c.Name,
		Code:     c.Code,
		Created:  Timestamp(c.Created),
		Updated:  NewTimestamp(c.Updated),
		Metadata: links.Currency(c.ID),
	}, nil
}

// NewCurrencyListResponse wraps encoded currencies in the collection envelope
func NewCurrencyListResponse(currencies []models.Currency) (CurrencyListResponse, error) {
	out := CurrencyListResponse{Currencies: make([]CurrencyResponse, 0, len(currencies))}
	for _, c := range currencies {
		resp, err := NewCurrencyResponse(c)
		if err != nil {
			return CurrencyListResponse{}, err
		}
		out.Currencies = append(out.Currencies, resp)
	}
	return out, nil
}
