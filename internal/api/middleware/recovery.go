package middleware

import (
	"log/slog"
	"net/http"

	"currencyrates/internal/logging"
	"currencyrates/internal/models"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error("Panic recovered",
			slog.Any("panic", recovered),
			slog.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewErrorResponse(http.StatusInternalServerError, "An unexpected error occurred."))
	})
}
