// Package v1 provides HTTP API version 1.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/infrastructure/http/v1/handlers"
	"catalogodeleite/internal/infrastructure/http/v1/middleware"
	"catalogodeleite/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// BasePath prefixes every catalog route, e.g. "/api"
	BasePath string

	// AllowOrigins lists the browser origins accepted by CORS
	AllowOrigins []string

	// Logger for request logging
	Logger *logger.Logger

	// Metrics records HTTP metrics when set
	Metrics middleware.HTTPRecorder

	// MetricsPath exposes MetricsHandler when both are set
	MetricsPath    string
	MetricsHandler http.Handler

	// Health backs the /health endpoints
	Health *handlers.HealthHandler

	// ProdutoService serves /produtos
	ProdutoService handlers.CatalogOperations[*produto.Produto]
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	// Recovery runs inside Logger and Metrics so panics are still logged and counted.
	router.Use(middleware.Trace())
	if cfg.Logger != nil {
		router.Use(middleware.Logger(cfg.Logger))
	}
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.Recovery())
	if len(cfg.AllowOrigins) > 0 {
		router.Use(middleware.CORS(cfg.AllowOrigins))
	}
	router.Use(middleware.ErrorHandler())

	if cfg.Health != nil {
		health := router.Group("/health")
		{
			health.GET("/live", cfg.Health.Live)
			health.GET("/ready", cfg.Health.Ready)
			health.GET("/info", cfg.Health.Info)
		}
	}

	if cfg.MetricsHandler != nil && cfg.MetricsPath != "" {
		router.GET(cfg.MetricsPath, gin.WrapH(cfg.MetricsHandler))
	}

	api := router.Group(cfg.BasePath)
	registerCatalogRoutes(api, cfg)

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- PRODUTOS ---
	if cfg.ProdutoService != nil {
		handler := handlers.NewProdutoHandler(baseHandler, cfg.ProdutoService)
		RegisterCatalogRoutes(rg.Group("/produtos"), handler)
	}
}
