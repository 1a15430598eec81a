package routes

import (
	"foundation-registry/internal/api/handlers"
	"foundation-registry/internal/api/middleware"
	"foundation-registry/internal/config"
	"foundation-registry/internal/metrics"
	"foundation-registry/internal/repository"
	"foundation-registry/internal/service"
	"foundation-registry/internal/validation"

	_ "foundation-registry/docs" // registers the swagger docs

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Metrics registry, served on /metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(appMetrics))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	foundationRepo := repository.NewFoundationRepository(db, cfg.FieldPolicy())

	// Initialize services
	foundationService := service.NewFoundationService(foundationRepo, validator, cfg.FieldPolicy(), appMetrics)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, foundationRepo)
	foundationHandler := handlers.NewFoundationHandler(foundationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes, rate limited per client IP
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(middleware.NewLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst), appMetrics))
	{
		v1.GET("/cnpj/:cnpj/validate", foundationHandler.ValidateCNPJ)

		foundations := v1.Group("/foundations")
		{
			foundations.GET("", foundationHandler.ListFoundations)
			foundations.POST("", foundationHandler.CreateFoundation)
			foundations.GET("/:cnpj", foundationHandler.GetFoundation)
			foundations.PUT("/:cnpj", foundationHandler.UpdateFoundation)
			foundations.DELETE("/:cnpj", foundationHandler.DeleteFoundation)
		}
	}

	return router
}
