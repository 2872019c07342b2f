package models

import "net/http"

// Response statuses carried in the "status" field of API bodies
const (
	StatusCreated = "CREATED"
	StatusUpdated = "UPDATED"
	StatusFailed  = "FAILED"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request body was provided.",
	http.StatusNotFound:            "Page not found.",
	http.StatusMethodNotAllowed:    "The method is not allowed for the requested URL.",
	http.StatusConflict:            "Can not process request...",
	http.StatusUnprocessableEntity: "Can not process provided data.",
	http.StatusTooManyRequests:     "Too many requests.",
	http.StatusInternalServerError: "Something went wrong...",
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string `json:"status" example:"FAILED"`
	Message string `json:"message" example:"Page not found."`
	Details any    `json:"details" swaggertype:"object"`
}

// NewErrorResponse builds the failure envelope for an HTTP status. The
// message is fixed per status; details carry the specifics.
func NewErrorResponse(status int, details any) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	return ErrorResponse{Status: StatusFailed, Message: msg, Details: details}
}
