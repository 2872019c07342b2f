package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired = "Missing data for required field."
	msgNull     = "Field may not be null."
)

// ValidationError collects field-level problems found while decoding or
// encoding a payload. Messages are keyed by wire field name.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message against a field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether the field already carries a message
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Error implements error with a stable, field-sorted rendering
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// err returns nil when nothing was collected
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// merge folds validator output into e. Fields that already failed type
// extraction keep only their first message.
func (e *ValidationError) merge(err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		e.Add("_schema", err.Error())
		return
	}
	for _, fe := range verrs {
		if e.Has(fe.Field()) {
			continue
		}
		e.Add(fe.Field(), fieldMessage(fe))
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return msgRequired
	case "len":
		return fmt.Sprintf("Value must be %s characters long.", fe.Param())
	case "uppercase":
		return "Value must be in an upper case."
	case "alpha":
		return "Value must contain letters only."
	case "min", "max":
		return "Length must be between 2 and 20."
	case "nospaces":
		return "Field may not be blank."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", fe.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s.", fe.Param())
	case "nefield":
		return fmt.Sprintf("Must differ from %s.", fe.Param())
	}
	return "Invalid value."
}
