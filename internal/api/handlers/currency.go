package handlers

import (
	"github.com/gin-gonic/gin"
)

// CurrencyHandler handles currency-related requests
type CurrencyHandler struct {
	svc Service
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(svc Service) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// ListCurrencies godoc
// @Summary List currencies
// @Description Returns all ACTIVE currencies, optionally filtered by code and name
// @Tags currencies
// @Produce json
// @Param code query string false "Currency code" minlength(3) maxlength(3)
// @Param name query string false "Currency name"
// @Success 200 {object} schema.CurrencyListResponse
// @Failure 400 {object} models.ErrorResponse "Invalid query arguments"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), queryPayload(c))
	respond(c, resp, err)
}

// GetCurrency godoc
// @Summary Get a currency by ID
// @Description Returns an ACTIVE currency with resource links
// @Tags currencies
// @Produce json
// @Param id path int true "Currency ID"
// @Success 200 {object} schema.CurrencyDetailResponse
// @Failure 404 {object} models.ErrorResponse "Currency not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies/{id} [get]
func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	respond(c, resp, err)
}

// CreateCurrency godoc
// @Summary Create a new currency
// @Description Creates an ACTIVE currency. The code must not be used by another ACTIVE currency.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body schema.CurrencyCreateRequest true "Currency name and code"
// @Success 201 {object} schema.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Duplicated code"
// @Failure 422 {object} models.ErrorResponse "Rejected by storage"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies [post]
func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), payload)
	respond(c, resp, err)
}

// UpdateCurrency godoc
// @Summary Update a currency
// @Description Changes name, code or status of an ACTIVE currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path int true "Currency ID"
// @Param currency body schema.CurrencyUpdateRequest true "Fields to change"
// @Success 200 {object} schema.CurrencyUpdatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Currency not found"
// @Failure 409 {object} models.ErrorResponse "Duplicated code"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies/{id} [patch]
func (h *CurrencyHandler) UpdateCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, payload)
	respond(c, resp, err)
}

// DeleteCurrency godoc
// @Summary Delete a currency
// @Description Soft-deletes an ACTIVE currency. Its rates are kept.
// @Tags currencies
// @Param id path int true "Currency ID"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse "Currency not found"
// @Failure 409 {object} models.ErrorResponse "Rejected by storage"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currencies/{id} [delete]
func (h *CurrencyHandler) DeleteCurrency(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	respond(c, resp, err)
}
