// Package validation provides custom validators for the application
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CurrencyCodeTag validates an ISO-4217 style code: three upper-case letters
const CurrencyCodeTag = "currencycode"

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator used by the schema layer.
// Field names in errors are taken from the json tag.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonTagName)
		if err := Register(v); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// Initialize registers all custom validators on gin's binding engine and
// makes JSON bodies decode numbers as json.Number
func Initialize() {
	binding.EnableDecoderUseNumber = true
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := Register(v); err != nil {
			panic(err)
		}
	}
}

// Register adds the custom tags and types to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("nospaces", validateNoSpaces); err != nil {
		return err
	}
	v.RegisterAlias(CurrencyCodeTag, "len=3,alpha,uppercase")
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return nil
}

// validateNoSpaces checks if a string contains non-space characters
func validateNoSpaces(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != ""
}

// decimalValue lets numeric tags (gt, lt) run against decimal fields
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
