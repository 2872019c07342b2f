package schema

// Request bodies as shown in the API docs. Handlers decode bodies into a
// Payload; these types only describe the accepted fields.

// CurrencyCreateRequest is the body of a currency create
type CurrencyCreateRequest struct {
	Name string `json:"name" binding:"required" minLength:"2" maxLength:"20" example:"US Dollar"`
	Code string `json:"code" binding:"required" minLength:"3" maxLength:"3" example:"USD"`
}

// CurrencyUpdateRequest is the body of a partial currency update. Any
// subset of the fields may be sent; id is rejected.
type CurrencyUpdateRequest struct {
	Name   string `json:"name,omitempty" minLength:"2" maxLength:"20" example:"Dollar"`
	Code   string `json:"code,omitempty" minLength:"3" maxLength:"3" example:"USD"`
	Status string `json:"status,omitempty" enums:"ACT,DEL" example:"ACT"`
}

// RateCreateRequest is the body of a rate create. Currencies are given by
// code and must differ.
type RateCreateRequest struct {
	OperationType string  `json:"operationType" binding:"required" enums:"BUY,SELL" example:"BUY"`
	Rate          float64 `json:"rate" binding:"required" example:"0.92"`
	IsCash        bool    `json:"isCash" binding:"required" example:"true"`
	BaseCurrency  string  `json:"baseCurrency" binding:"required" example:"USD"`
	Currency      string  `json:"currency" binding:"required" example:"EUR"`
}

// RateUpdateRequest is the body of a partial rate update. The currencies
// of a rate cannot change; id is rejected.
type RateUpdateRequest struct {
	OperationType string   `json:"operationType,omitempty" enums:"BUY,SELL" example:"SELL"`
	Rate          *float64 `json:"rate,omitempty" example:"0.93"`
	IsCash        *bool    `json:"isCash,omitempty" example:"false"`
}
