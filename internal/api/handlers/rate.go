package handlers

import (
	"github.com/gin-gonic/gin"
)

// RateHandler handles exchange rate requests
type RateHandler struct {
	svc Service
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(svc Service) *RateHandler {
	return &RateHandler{svc: svc}
}

// ListRates godoc
// @Summary List exchange rates
// @Description Returns rates whose base and quote currencies are both ACTIVE
// @Tags rates
// @Produce json
// @Param currency query string false "Quote currency code"
// @Param baseCurrency query string false "Base currency code"
// @Param rate query number false "Exact rate"
// @Param isCash query bool false "Cash rate"
// @Param operationType query string false "Operation type" Enums(BUY, SELL)
// @Success 200 {object} schema.RateListResponse
// @Failure 400 {object} models.ErrorResponse "Invalid query arguments"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /rates [get]
func (h *RateHandler) ListRates(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), queryPayload(c))
	respond(c, resp, err)
}

// GetRate godoc
// @Summary Get a rate by ID
// @Description Returns a rate with both currencies nested
// @Tags rates
// @Produce json
// @Param id path int true "Rate ID"
// @Success 200 {object} schema.RateDetailResponse
// @Failure 404 {object} models.ErrorResponse "Rate not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /rates/{id} [get]
func (h *RateHandler) GetRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	respond(c, resp, err)
}

// CreateRate godoc
// @Summary Create a new rate
// @Description Creates a rate between two ACTIVE currencies given by code
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body schema.RateCreateRequest true "Rate to create"
// @Success 201 {object} schema.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body or unknown currency"
// @Failure 422 {object} models.ErrorResponse "Rejected by storage"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /rates [post]
func (h *RateHandler) CreateRate(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), payload)
	respond(c, resp, err)
}

// UpdateRate godoc
// @Summary Update a rate
// @Description Changes operationType, rate or isCash. Currencies cannot be changed.
// @Tags rates
// @Accept json
// @Produce json
// @Param id path int true "Rate ID"
// @Param rate body schema.RateUpdateRequest true "Fields to change"
// @Success 200 {object} schema.RateUpdatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Rate not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /rates/{id} [patch]
func (h *RateHandler) UpdateRate(c *gin.Context) {
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

// DeleteRate godoc
// @Summary Delete a rate
// @Tags rates
// @Param id path int true "Rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} models.ErrorResponse "Rate not found"
// @Failure 409 {object} models.ErrorResponse "Rejected by storage"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /rates/{id} [delete]
func (h *RateHandler) DeleteRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	respond(c, resp, err)
}
