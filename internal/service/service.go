// Package service holds the business rules of the currency and rate APIs.
// Operations return a Response (body and HTTP status) or an *Error carrying
// the status the failure maps to. Any other error is an internal failure.
package service

import (
	"errors"
	"fmt"
	"net/http"

	"currencyrates/internal/models"
	"currencyrates/internal/schema"
)

// Response is an encoded body together with its HTTP status
type Response struct {
	Status int
	Body   any
}

// Error is a business failure with the HTTP status it maps to
type Error struct {
	Status  int
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.Details)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(status int, details any, err error) *Error {
	return &Error{Status: status, Details: details, Err: err}
}

func badRequest(details string) *Error {
	return newError(http.StatusBadRequest, details, nil)
}

func notFound(details string) *Error {
	return newError(http.StatusNotFound, details, nil)
}

func conflict(details string) *Error {
	return newError(http.StatusConflict, details, nil)
}

// invalid maps a schema validation failure to 400 with per-field details.
// Other errors pass through unchanged.
func invalid(err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return newError(http.StatusBadRequest, verr.Fields, err)
	}
	return err
}

func ok(body any) *Response {
	return &Response{Status: http.StatusOK, Body: body}
}

func created(id int64) *Response {
	return &Response{
		Status: http.StatusCreated,
		Body:   schema.CreatedResponse{Status: models.StatusCreated, ID: id},
	}
}

func noContent() *Response {
	return &Response{Status: http.StatusNoContent, Body: struct{}{}}
}

const msgIDNotUpdatable = "The 'id' field is not allowed to be updated."
