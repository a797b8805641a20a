// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"warebill/internal/infrastructure/http/v1/middleware"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
}

// DocumentUpdateHandler is an optional interface for documents that
// support in-place updates. Immutable documents skip it.
type DocumentUpdateHandler interface {
	Update(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// Reads are open; mutations require an authenticated caller.
//
// Usage:
//
//	repo := catalog_repo.NewProductRepo(cfg.TxManager)
//	service := domain.NewCatalogService(repo, cfg.TxManager)
//	handler := handlers.NewProductHandler(baseHandler, service)
//	RegisterCatalogRoutes(catalogs.Group("/products"), handler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", middleware.RequireAuth(), handler.Create)
	group.PUT("/:id", middleware.RequireAuth(), handler.Update)
	group.DELETE("/:id", middleware.RequireAuth(), handler.Delete)
	group.POST("/:id/deletion-mark", middleware.RequireAuth(), handler.SetDeletionMark)
}

// RegisterDocumentRoutes registers standard CRUD routes for a document.
// The PUT route is registered only when the handler supports updates.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", middleware.RequireAuth(), handler.Create)
	group.DELETE("/:id", middleware.RequireAuth(), handler.Delete)

	if updateHandler, ok := handler.(DocumentUpdateHandler); ok {
		group.PUT("/:id", middleware.RequireAuth(), updateHandler.Update)
	}
}
