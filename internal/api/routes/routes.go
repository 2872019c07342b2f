// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"
	"log/slog"
	"net/http"

	"currencyrates/docs"
	"currencyrates/internal/api/handlers"
	"currencyrates/internal/api/middleware"
	"currencyrates/internal/config"
	"currencyrates/internal/repository/postgres"
	"currencyrates/internal/schema"
	"currencyrates/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB, logger *slog.Logger, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.API.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.StructuredLogging(logger),
		middleware.Recovery(),
		cors.New(corsConfig(cfg.CORS)),
		middleware.Compression(middleware.DefaultCompressionConfig()),
	)

	r.NoRoute(func(c *gin.Context) {
		handlers.RespondError(c, http.StatusNotFound, "The requested URL was not found on the server.")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.RespondError(c, http.StatusMethodNotAllowed, c.Request.Method+" is not allowed on "+c.Request.URL.Path+".")
	})

	// Routes without rate limiting
	if !cfg.API.IsProduction {
		docs.SwaggerInfo.BasePath = "/api/v1"
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Use(limiter.Middleware())

	links := schema.NewLinker(cfg.API.BaseURL)
	currencyRepo := postgres.NewCurrencyRepository(db)
	rateRepo := postgres.NewRateRepository(db)

	healthHandler := handlers.NewHealthHandler(db)
	currencyHandler := handlers.NewCurrencyHandler(service.NewCurrencyService(currencyRepo, links))
	rateHandler := handlers.NewRateHandler(service.NewRateService(rateRepo, currencyRepo, links))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		currencies := v1.Group("/currencies")
		{
			currencies.GET("", currencyHandler.ListCurrencies)
			currencies.POST("", currencyHandler.CreateCurrency)
			currencies.GET("/:id", currencyHandler.GetCurrency)
			currencies.PATCH("/:id", currencyHandler.UpdateCurrency)
			currencies.DELETE("/:id", currencyHandler.DeleteCurrency)
		}

		rates := v1.Group("/rates")
		{
			rates.GET("", rateHandler.ListRates)
			rates.POST("", rateHandler.CreateRate)
			rates.GET("/:id", rateHandler.GetRate)
			rates.PATCH("/:id", rateHandler.UpdateRate)
			rates.DELETE("/:id", rateHandler.DeleteRate)
		}
	}

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, "Accept-Encoding", "Content-Encoding")
	c.ExposeHeaders = []string{
		middleware.RequestIDHeader,
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
	}

	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
