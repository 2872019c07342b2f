// Package handlers exposes the currency and rate services over HTTP
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"currencyrates/internal/logging"
	"currencyrates/internal/models"
	"currencyrates/internal/schema"
	"currencyrates/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Service is the operation set shared by the currency and rate services
type Service interface {
	List(ctx context.Context, args schema.Payload) (*service.Response, error)
	Get(ctx context.Context, id int64) (*service.Response, error)
	Create(ctx context.Context, payload schema.Payload) (*service.Response, error)
	Update(ctx context.Context, id int64, payload schema.Payload) (*service.Response, error)
	Delete(ctx context.Context, id int64) (*service.Response, error)
}

const (
	msgPageNotFound  = "The requested URL was not found on the server."
	msgNotJSON       = "Content-Type must be application/json."
	msgNotJSONObject = "Request body must be a JSON object."
	msgInternal      = "An unexpected error occurred."
)

type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// pathID reads the numeric id path segment. A missing or malformed id is
// answered with 404 since no resource can live there.
func pathID(c *gin.Context) (int64, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		RespondError(c, http.StatusNotFound, msgPageNotFound)
		return 0, false
	}
	return uri.ID, true
}

// bindPayload decodes a JSON object body, keeping numbers exact
func bindPayload(c *gin.Context) (schema.Payload, bool) {
	if c.ContentType() != binding.MIMEJSON {
		RespondError(c, http.StatusBadRequest, msgNotJSON)
		return nil, false
	}

	var payload schema.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logging.FromContext(c.Request.Context()).Debug("Malformed request body", slog.Any("error", err))
		RespondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if payload == nil {
		RespondError(c, http.StatusBadRequest, msgNotJSONObject)
		return nil, false
	}
	return payload, true
}

func queryPayload(c *gin.Context) schema.Payload {
	return schema.PayloadFromQuery(c.Request.URL.Query())
}

// RespondError writes the failure envelope and aborts the chain
func RespondError(c *gin.Context, status int, details any) {
	c.AbortWithStatusJSON(status, models.NewErrorResponse(status, details))
}

func respond(c *gin.Context, resp *service.Response, err error) {
	if err != nil {
		handleError(c, err)
		return
	}
	if resp.Status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(resp.Status, resp.Body)
}

func handleError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		RespondError(c, svcErr.Status, svcErr.Details)
		return
	}

	logging.FromContext(c.Request.Context()).Error("Request failed",
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)
	RespondError(c, http.StatusInternalServerError, msgInternal)
}
