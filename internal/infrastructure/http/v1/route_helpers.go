// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
type CatalogRouteHandler interface {
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
	GetIfSatisfies(c *gin.Context)
}

// RegisterCatalogRoutes registers the CRUD and search routes for a catalog.
//
// Usage:
//
//	handler := handlers.NewProdutoHandler(baseHandler, service)
//	RegisterCatalogRoutes(api.Group("/produtos"), handler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("/search", handler.Search)
	group.POST("", handler.Create)
	group.GET("/:code", handler.Get)
	group.PUT("/:code", handler.Update)
	group.DELETE("/:code", handler.Delete)
	group.GET("/:code/ifSatisfies", handler.GetIfSatisfies)
}
