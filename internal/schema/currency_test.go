package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"currencyrates/internal/models"
	"currencyrates/internal/schema"
	"currencyrates/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationFields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestDecodeCurrencyCreate(t *testing.T) {
	tests := []struct {
		name      string
		payload   schema.Payload
		want      models.Currency
		errFields []string
	}{
		{
			name:    "Valid",
			payload: schema.Payload{"name": "US Dollar", "code": "USD"},
			want:    models.Currency{Name: "US Dollar", Code: "USD", Status: models.CurrencyStatusActive},
		},
		{
			name:    "Status and unknown fields are ignored",
			payload: schema.Payload{"name": "Euro", "code": "EUR", "status": "DEL", "symbol": "€"},
			want:    models.Currency{Name: "Euro", Code: "EUR", Status: models.CurrencyStatusActive},
		},
		{
			name:      "Missing fields",
			payload:   schema.Payload{},
			errFields: []string{"name", "code"},
		},
		{
			name:      "Lower case code",
			payload:   schema.Payload{"name": "Euro", "code": "eur"},
			errFields: []string{"code"},
		},
		{
			name:      "Code too long",
			payload:   schema.Payload{"name": "Tether", "code": "USDT"},
			errFields: []string{"code"},
		},
		{
			name:      "Name of one character",
			payload:   schema.Payload{"name": "E", "code": "EUR"},
			errFields: []string{"name"},
		},
		{
			name:      "Name too long",
			payload:   schema.Payload{"name": "A currency name that is too long", "code": "EUR"},
			errFields: []string{"name"},
		},
		{
			name:      "Blank name",
			payload:   schema.Payload{"name": "    ", "code": "EUR"},
			errFields: []string{"name"},
		},
		{
			name:      "Wrong types",
			payload:   schema.Payload{"name": json.Number("12"), "code": nil},
			errFields: []string{"name", "code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schema.DecodeCurrencyCreate(tt.payload)
			if tt.errFields != nil {
				fields := validationFields(t, err)
				assert.Len(t, fields, len(tt.errFields))
				for _, f := range tt.errFields {
					assert.Contains(t, fields, f)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCurrencyCreate_Messages(t *testing.T) {
	_, err := schema.DecodeCurrencyCreate(schema.Payload{"name": nil, "code": "usd"})
	fields := validationFields(t, err)
	assert.Equal(t, []string{"Field may not be null."}, fields["name"])
	assert.Equal(t, []string{"Value must be in an upper case."}, fields["code"])

	_, err = schema.DecodeCurrencyCreate(schema.Payload{"code": "US"})
	fields = validationFields(t, err)
	assert.Equal(t, []string{"Missing data for required field."}, fields["name"])
	assert.Equal(t, []string{"Value must be 3 characters long."}, fields["code"])
}

func TestDecodeCurrencyUpdate(t *testing.T) {
	changes, err := schema.DecodeCurrencyUpdate(schema.Payload{"name": "Euro"})
	require.NoError(t, err)
	assert.Equal(t, testutil.String("Euro"), changes.Name)
	assert.Nil(t, changes.Code)
	assert.Nil(t, changes.Status)

	changes, err = schema.DecodeCurrencyUpdate(schema.Payload{"status": "DEL", "code": "EUR"})
	require.NoError(t, err)
	require.NotNil(t, changes.Status)
	assert.Equal(t, models.CurrencyStatusDeleted, *changes.Status)
	assert.Equal(t, testutil.String("EUR"), changes.Code)

	changes, err = schema.DecodeCurrencyUpdate(schema.Payload{})
	require.NoError(t, err)
	assert.True(t, changes.IsEmpty())

	_, err = schema.DecodeCurrencyUpdate(schema.Payload{"status": "act"})
	fields := validationFields(t, err)
	assert.Equal(t, []string{"Must be one of: ACT, DEL."}, fields["status"])
}

func TestDecodeCurrencyQuery(t *testing.T) {
	q, err := schema.DecodeCurrencyQuery(schema.Payload{"code": "USD"})
	require.NoError(t, err)
	assert.Equal(t, testutil.String("USD"), q.Code)
	assert.Nil(t, q.Name)

	_, err = schema.DecodeCurrencyQuery(schema.Payload{"code": "usd"})
	assert.Contains(t, validationFields(t, err), "code")
}

func TestStatusCodec(t *testing.T) {
	for stored, wire := range map[models.CurrencyStatus]string{
		models.CurrencyStatusActive:  "ACT",
		models.CurrencyStatusDeleted: "DEL",
	} {
		encoded, err := schema.EncodeStatus(stored)
		require.NoError(t, err)
		assert.Equal(t, wire, encoded)

		decoded, err := schema.DecodeStatus(wire)
		require.NoError(t, err)
		assert.Equal(t, stored, decoded)
	}

	_, err := schema.EncodeStatus(models.CurrencyStatus(7))
	assert.Contains(t, validationFields(t, err), "status")

	_, err = schema.DecodeStatus("Act")
	assert.Contains(t, validationFields(t, err), "status")
}

func TestNewCurrencyDetailResponse(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 5, 7, 0, time.UTC)
	currency := models.Currency{
		ID:      3,
		Status:  models.CurrencyStatusActive,
		Name:    "Euro",
		Code:    "EUR",
		Created: created,
	}

	resp, err := schema.NewCurrencyDetailResponse(currency, schema.NewLinker("http://api.test/"))
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"status": "ACT",
		"name": "Euro",
		"code": "EUR",
		"created": "16-10-2026 09:05:07",
		"updated": null,
		"metadata": {
			"self": "http://api.test/api/v1/currencies/3",
			"collection": "http://api.test/api/v1/currencies"
		}
	}`, string(body))
}

func TestNewCurrencyListResponse(t *testing.T) {
	resp, err := schema.NewCurrencyListResponse(nil)
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"next": null, "currencies": []}`, string(body))

	resp, err = schema.NewCurrencyListResponse([]models.Currency{
		{ID: 1, Status: models.CurrencyStatusActive, Name: "US Dollar", Code: "USD"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Currencies, 1)
	assert.Equal(t, schema.CurrencyResponse{ID: 1, Status: "ACT", Code: "USD", Name: "US Dollar"}, resp.Currencies[0])
}
