// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"warebill/internal/domain/billing"
	"warebill/internal/domain/billing/export"
	"warebill/internal/domain/catalogs/customer"
	"warebill/internal/domain/catalogs/material"
	"warebill/internal/domain/catalogs/product"
	"warebill/internal/domain/catalogs/service_type"
	"warebill/internal/domain/documents/order"
	"warebill/internal/domain/documents/shipment"
	"warebill/internal/infrastructure/http/v1/handlers"
	"warebill/internal/infrastructure/http/v1/middleware"
	"warebill/internal/infrastructure/storage/postgres"
	"warebill/internal/infrastructure/storage/postgres/billing_repo"
	"warebill/internal/infrastructure/storage/postgres/catalog_repo"
	"warebill/internal/infrastructure/storage/postgres/document_repo"
	"warebill/pkg/logger"
	"warebill/pkg/numerator"
)

// RouterConfig holds everything the router needs to wire handlers.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks).
	Pool *postgres.Pool

	// TxManager runs queries and transactions against the pool.
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Numerator for document and report number generation
	Numerator *numerator.Service

	// CacheStore backs the preview report cache.
	CacheStore billing.Store

	// ReportCacheTTL is how long preview reports stay cached.
	ReportCacheTTL time.Duration

	// MaxReportSize caps the estimated rendered report size in bytes.
	MaxReportSize int64

	// MaxReportRangeDays caps the billing period length; zero disables.
	MaxReportRangeDays int
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1. Auth resolves the caller when a token is present and lets
	// anonymous requests through; mutating routes add RequireAuth.
	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTValidator))
	{
		registerCatalogRoutes(api, cfg)
		registerDocumentRoutes(api, cfg)
		registerBillingRoutes(api, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- CUSTOMERS ---
	{
		repo := catalog_repo.NewCustomerRepo(cfg.TxManager)
		service := customer.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewCustomerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/customers"), handler)
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewProductHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/products"), handler)
	}

	// --- MATERIALS ---
	{
		repo := catalog_repo.NewMaterialRepo(cfg.TxManager)
		service := material.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewMaterialHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/materials"), handler)
	}

	// --- SERVICE TYPES ---
	{
		repo := catalog_repo.NewServiceTypeRepo(cfg.TxManager)
		service := service_type.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewServiceTypeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/service-types"), handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	orderRepo := document_repo.NewOrderRepo(cfg.TxManager)

	// --- ORDERS ---
	{
		service := order.NewService(orderRepo, cfg.Numerator, cfg.TxManager)
		handler := handlers.NewOrderHandler(baseHandler, service)

		group := docsGroup.Group("/orders")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/status", middleware.RequireAuth(), handler.UpdateStatus)
	}

	// --- SHIPMENTS ---
	{
		repo := document_repo.NewShipmentRepo(cfg.TxManager)
		service := shipment.NewService(repo, orderRepo, cfg.Numerator, cfg.TxManager)
		handler := handlers.NewShipmentHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/shipments"), handler)
	}
}

// registerBillingRoutes registers billing report and rate assignment endpoints.
func registerBillingRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	billingGroup := rg.Group("/billing")
	baseHandler := handlers.NewBaseHandler()

	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	reportRepo := billing_repo.NewReportRepo(cfg.TxManager)
	assignmentRepo := billing_repo.NewCustomerServiceRepo(cfg.TxManager)
	calculator := billing_repo.NewChargeCalculator(cfg.TxManager)

	reportService := billing.NewReportService(
		calculator,
		billing.NewValidator(),
		billing.NewSizeEstimator(cfg.MaxReportSize),
		billing.NewReportCache(cfg.CacheStore, cfg.ReportCacheTTL),
		export.DefaultRenderers(),
		customerRepo,
		reportRepo,
		cfg.Numerator,
		cfg.TxManager,
	)
	assignmentService := billing.NewAssignmentService(assignmentRepo, cfg.TxManager)

	handler := handlers.NewBillingHandler(baseHandler, reportService, assignmentService, cfg.MaxReportRangeDays)

	// Report generation is open to anonymous callers; only authenticated
	// runs are persisted.
	reports := billingGroup.Group("/reports")
	{
		reports.POST("/generate", handler.Generate)
		reports.GET("", handler.ListReports)
		reports.GET("/:id", handler.GetReport)
		reports.DELETE("/:id", middleware.RequireAuth(), handler.DeleteReport)
	}

	customers := billingGroup.Group("/customers/:id/services")
	{
		customers.GET("", handler.ListAssignments)
		customers.POST("", middleware.RequireAuth(), handler.AssignService)
	}

	services := billingGroup.Group("/services/:id")
	{
		services.PUT("/rate", middleware.RequireAuth(), handler.UpdateRate)
		services.POST("/deactivate", middleware.RequireAuth(), handler.DeactivateAssignment)
	}
}
