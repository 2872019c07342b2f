package schema

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Payload is a generic wire key/value bag: a decoded JSON object body or a
// set of query arguments.
type Payload map[string]any

// PayloadFromQuery keeps the first value of every query argument
func PayloadFromQuery(values url.Values) Payload {
	p := make(Payload, len(values))
	for k, v := range values {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	return p
}

// Has reports whether the key is present, null or not
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Only returns a copy restricted to the allowed keys
func (p Payload) Only(keys ...string) Payload {
	out := make(Payload, len(keys))
	for _, k := range keys {
		if v, ok := p[k]; ok {
			out[k] = v
		}
	}
	return out
}

// reader pulls typed values out of a payload. Absent keys yield nil; values
// of the wrong type are recorded on errs and also yield nil.
type reader struct {
	payload Payload
	errs    *ValidationError
}

func (r reader) lookup(key string) (any, bool) {
	raw, ok := r.payload[key]
	if !ok {
		return nil, false
	}
	if raw == nil {
		r.errs.Add(key, msgNull)
		return nil, false
	}
	return raw, true
}

func (r reader) String(key string) *string {
	raw, ok := r.lookup(key)
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		r.errs.Add(key, "Not a valid string.")
		return nil
	}
	return &s
}

func (r reader) Bool(key string) *bool {
	raw, ok := r.lookup(key)
	if !ok {
		return nil
	}

	var b bool
	switch v := raw.(type) {
	case bool:
		b = v
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			r.errs.Add(key, "Not a valid boolean.")
			return nil
		}
		b = parsed
	case json.Number:
		switch v.String() {
		case "0":
			b = false
		case "1":
			b = true
		default:
			r.errs.Add(key, "Not a valid boolean.")
			return nil
		}
	default:
		r.errs.Add(key, "Not a valid boolean.")
		return nil
	}
	return &b
}

// Decimal reads a fixed-point number from a JSON number or a string and
// rounds it half-up to RatePlaces fractional digits.
func (r reader) Decimal(key string) *decimal.Decimal {
	raw, ok := r.lookup(key)
	if !ok {
		return nil
	}

	var (
		d   decimal.Decimal
		err error
	)
	switch v := raw.(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case string:
		d, err = decimal.NewFromString(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.errs.Add(key, "Not a valid number.")
			return nil
		}
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	default:
		r.errs.Add(key, "Not a valid number.")
		return nil
	}
	if err != nil {
		r.errs.Add(key, "Not a valid number.")
		return nil
	}

	d = DecodeRate(d)
	return &d
}
