package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"catalogodeleite/internal/core/apperror"
	"catalogodeleite/internal/core/entity"
	"catalogodeleite/internal/domain"
	"catalogodeleite/internal/domain/search"
	"catalogodeleite/internal/infrastructure/http/v1/dto"
	"catalogodeleite/internal/infrastructure/http/v1/middleware"
)

// CatalogOperations is the service surface a catalog handler drives.
type CatalogOperations[T entity.Coded] interface {
	GetByCode(ctx context.Context, code string) (T, error)
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, code string, entity T) error
	Delete(ctx context.Context, code string) error
	Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult[T], error)
	GetIfSatisfiesQuery(ctx context.Context, query, code string) (T, error)
}

// CatalogHandler provides generic HTTP handlers for code-keyed catalog entities.
type CatalogHandler[T entity.Coded, Req any] struct {
	*BaseHandler
	service CatalogOperations[T]

	// Mapper functions
	mapRequest func(req Req) T
	mapToDTO   func(entity T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Coded, Req any] struct {
	Service    CatalogOperations[T]
	MapRequest func(req Req) T
	MapToDTO   func(entity T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Coded, Req any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, Req],
) *CatalogHandler[T, Req] {
	return &CatalogHandler[T, Req]{
		BaseHandler: base,
		service:     cfg.Service,
		mapRequest:  cfg.MapRequest,
		mapToDTO:    cfg.MapToDTO,
	}
}

// Get handles GET /{entity}/:code.
func (h *CatalogHandler[T, Req]) Get(c *gin.Context) {
	entity, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(entity))
}

// Create handles POST /{entity} and echoes the stored entity.
func (h *CatalogHandler[T, Req]) Create(c *gin.Context) {
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.mapRequest(req)
	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(entity))
}

// Update handles PUT /{entity}/:code. The body code must equal the path code.
func (h *CatalogHandler[T, Req]) Update(c *gin.Context) {
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.mapRequest(req)
	if err := h.service.Update(c.Request.Context(), c.Param("code"), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(entity))
}

// Delete handles DELETE /{entity}/:code.
func (h *CatalogHandler[T, Req]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Search handles GET /{entity}/search?query=&offset=&limit=&sort=&order=.
func (h *CatalogHandler[T, Req]) Search(c *gin.Context) {
	var req dto.SearchRequest
	if !h.BindQuery(c, &req) {
		return
	}

	window := search.NewWindow(req.Offset, req.Limit)
	result, err := h.service.Search(c.Request.Context(), domain.SearchQuery{
		Query:  req.Query,
		Offset: req.Offset,
		Limit:  req.Limit,
		Sort: search.SortSpec{
			Columns:    req.Sort,
			Directions: req.Order,
		},
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	middleware.AnnotateSearch(c, req.Query, window, result.TotalCount)

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	h.OK(c, dto.SearchResponse[any]{
		Items:      items,
		TotalCount: result.TotalCount,
	})
}

// GetIfSatisfies handles GET /{entity}/:code/ifSatisfies?query=.
func (h *CatalogHandler[T, Req]) GetIfSatisfies(c *gin.Context) {
	query, ok := c.GetQuery("query")
	if !ok {
		h.Error(c, apperror.NewValidation("query parameter is required").WithDetail("field", "query"))
		return
	}

	entity, err := h.service.GetIfSatisfiesQuery(c.Request.Context(), query, c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(entity))
}
