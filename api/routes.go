package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/devfolio/folio-api/api/handlers"
	"github.com/devfolio/folio-api/api/middleware"
	"github.com/devfolio/folio-api/internal/logger"
	"github.com/devfolio/folio-api/internal/tracing"
	"github.com/devfolio/folio-api/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(r *gin.Engine, s *services.Services, log logger.Logger, adminAPIKey, staticDir string) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery

	apiHandlers := handlers.InitHandlers(s, log)

	// Health check endpoint
	r.GET("/health", handlers.HealthCheck)

	adminMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-FOLIO-API-KEY",
		ValidAPIKey: adminAPIKey,
	}, log)

	api := r.Group("/api")
	api.Use(middleware.TracingMiddleware())
	{
		// Contact form endpoints; submission is public, triage is admin-only
		contact := api.Group("/contact")
		{
			contact.POST("", apiHandlers.Contact.Submit())
			contact.GET("", adminMiddleware, apiHandlers.Contact.List())
			contact.GET("/stats", adminMiddleware, apiHandlers.Contact.Stats())
			contact.PATCH("/:id", adminMiddleware, apiHandlers.Contact.Update())
			contact.DELETE("/:id", adminMiddleware, apiHandlers.Contact.Delete())
		}

		// Asset endpoints; reads are public, writes are admin-only
		assets := api.Group("/assets")
		{
			assets.GET("", apiHandlers.Assets.GetAll())
			assets.GET("/:assetType", apiHandlers.Assets.GetByType())
			assets.POST("", adminMiddleware, apiHandlers.Assets.Upsert())
		}
	}

	if staticDir != "" {
		registerStatic(r, staticDir)
	}
}

// registerStatic serves the built front end and falls back to index.html for
// client-side routes. API paths never reach the fallback.
func registerStatic(r *gin.Engine, staticDir string) {
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
