package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"currencyrates/internal/api/handlers"
	"currencyrates/internal/models"
	"currencyrates/internal/schema"
	"currencyrates/internal/service"
	"currencyrates/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, args schema.Payload) (*service.Response, error) {
	ret := m.Called(ctx, args)
	return response(ret)
}

func (m *MockService) Get(ctx context.Context, id int64) (*service.Response, error) {
	ret := m.Called(ctx, id)
	return response(ret)
}

func (m *MockService) Create(ctx context.Context, payload schema.Payload) (*service.Response, error) {
	ret := m.Called(ctx, payload)
	return response(ret)
}

func (m *MockService) Update(ctx context.Context, id int64, payload schema.Payload) (*service.Response, error) {
	ret := m.Called(ctx, id, payload)
	return response(ret)
}

func (m *MockService) Delete(ctx context.Context, id int64) (*service.Response, error) {
	ret := m.Called(ctx, id)
	return response(ret)
}

func response(ret mock.Arguments) (*service.Response, error) {
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*service.Response), ret.Error(1)
}

func setupRouter(svc handlers.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	h := handlers.NewCurrencyHandler(svc)
	router := gin.New()
	router.GET("/currencies", h.ListCurrencies)
	router.POST("/currencies", h.CreateCurrency)
	router.GET("/currencies/:id", h.GetCurrency)
	router.PATCH("/currencies/:id", h.UpdateCurrency)
	router.DELETE("/currencies/:id", h.DeleteCurrency)
	return router
}

func doRequest(router http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusFailed, resp.Status)
	return resp
}

func TestCurrencyHandler_ListCurrencies(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("List", mock.Anything, schema.Payload{"code": "USD"}).Return(&service.Response{
		Status: http.StatusOK,
		Body: schema.CurrencyListResponse{Currencies: []schema.CurrencyResponse{
			{ID: 1, Status: "ACT", Code: "USD", Name: "US Dollar"},
		}},
	}, nil).Once()

	w := doRequest(router, http.MethodGet, "/currencies?code=USD", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"next":null,"currencies":[{"id":1,"status":"ACT","code":"USD","name":"US Dollar"}]}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCurrencyHandler_GetCurrency(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*MockService)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "Success",
			path: "/currencies/1",
			setup: func(svc *MockService) {
				svc.On("Get", mock.Anything, int64(1)).
					Return(&service.Response{Status: http.StatusOK, Body: gin.H{"id": 1}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/currencies/2",
			setup: func(svc *MockService) {
				svc.On("Get", mock.Anything, int64(2)).
					Return(nil, &service.Error{Status: http.StatusNotFound, Details: "Currency with id: 2 does not exist."}).Once()
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Page not found.",
		},
		{
			name:       "Non-numeric id",
			path:       "/currencies/abc",
			setup:      func(*MockService) {},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Page not found.",
		},
		{
			name:       "Zero id",
			path:       "/currencies/0",
			setup:      func(*MockService) {},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Page not found.",
		},
		{
			name: "Unexpected error",
			path: "/currencies/3",
			setup: func(svc *MockService) {
				svc.On("Get", mock.Anything, int64(3)).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Something went wrong...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setup(svc)
			router := setupRouter(svc)

			w := doRequest(router, http.MethodGet, tt.path, "", nil)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				resp := decodeError(t, w)
				assert.Equal(t, tt.wantMsg, resp.Message)
				assert.NotContains(t, w.Body.String(), "connection reset")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCurrencyHandler_CreateCurrency(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		setup       func(*MockService)
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "Created",
			contentType: "application/json",
			body:        `{"name":"US Dollar","code":"USD"}`,
			setup: func(svc *MockService) {
				svc.On("Create", mock.Anything, schema.Payload{"name": "US Dollar", "code": "USD"}).
					Return(&service.Response{
						Status: http.StatusCreated,
						Body:   schema.CreatedResponse{Status: "CREATED", ID: 1},
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"status":"CREATED","id":1}`,
		},
		{
			name:        "Numbers stay exact",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"US Dollar","code":"USD","rate":0.123456}`,
			setup: func(svc *MockService) {
				svc.On("Create", mock.Anything, schema.Payload{
					"name": "US Dollar", "code": "USD", "rate": json.Number("0.123456"),
				}).Return(&service.Response{Status: http.StatusCreated, Body: gin.H{}}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{}`,
		},
		{
			name:        "Validation error",
			contentType: "application/json",
			body:        `{"name":"US Dollar","code":"usd"}`,
			setup: func(svc *MockService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, &service.Error{
					Status:  http.StatusBadRequest,
					Details: map[string][]string{"code": {"Value must be in an upper case."}},
				}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody: `{"status":"FAILED","message":"Invalid request body was provided.",
				"details":{"code":["Value must be in an upper case."]}}`,
		},
		{
			name:        "Duplicate",
			contentType: "application/json",
			body:        `{"name":"US Dollar","code":"USD"}`,
			setup: func(svc *MockService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, &service.Error{
					Status:  http.StatusConflict,
					Details: "Currency with the same code already exists. Duplicated ID: 1",
				}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody: `{"status":"FAILED","message":"Can not process request...",
				"details":"Currency with the same code already exists. Duplicated ID: 1"}`,
		},
		{
			name:       "Missing content type",
			body:       `{"name":"US Dollar","code":"USD"}`,
			setup:      func(*MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "Malformed JSON",
			contentType: "application/json",
			body:        `{"name":`,
			setup:       func(*MockService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "Array body",
			contentType: "application/json",
			body:        `[1,2]`,
			setup:       func(*MockService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "Null body",
			contentType: "application/json",
			body:        `null`,
			setup:       func(*MockService) {},
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setup(svc)
			router := setupRouter(svc)

			w := doRequest(router, http.MethodPost, "/currencies", tt.contentType, []byte(tt.body))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, "Invalid request body was provided.", decodeError(t, w).Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCurrencyHandler_UpdateCurrency(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Update", mock.Anything, int64(1), schema.Payload{"name": "Dollar"}).Return(&service.Response{
		Status: http.StatusOK,
		Body: schema.CurrencyUpdatedResponse{
			Status: "UPDATED",
			Record: schema.CurrencyResponse{ID: 1, Status: "ACT", Code: "USD", Name: "Dollar"},
		},
	}, nil).Once()

	w := doRequest(router, http.MethodPatch, "/currencies/1", "application/json", []byte(`{"name":"Dollar"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UPDATED","record":{"id":1,"status":"ACT","code":"USD","name":"Dollar"}}`, w.Body.String())

	// Path is checked before the body
	w = doRequest(router, http.MethodPatch, "/currencies/x", "application/json", []byte(`{`))
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.AssertExpectations(t)
}

func TestCurrencyHandler_DeleteCurrency(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Delete", mock.Anything, int64(1)).
		Return(&service.Response{Status: http.StatusNoContent, Body: struct{}{}}, nil).Once()
	svc.On("Delete", mock.Anything, int64(2)).
		Return(nil, &service.Error{Status: http.StatusConflict, Details: "locked"}).Once()

	w := doRequest(router, http.MethodDelete, "/currencies/1", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/currencies/2", "", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "locked", decodeError(t, w).Details)

	svc.AssertExpectations(t)
}
