package handlers

import (
	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/infrastructure/http/v1/dto"
)

// ProdutoHandler serves the product catalog.
type ProdutoHandler = CatalogHandler[*produto.Produto, dto.ProdutoRequest]

// NewProdutoHandler creates a new product handler.
func NewProdutoHandler(base *BaseHandler, service CatalogOperations[*produto.Produto]) *ProdutoHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*produto.Produto, dto.ProdutoRequest]{
		Service:    service,
		MapRequest: dto.ProdutoRequest.ToEntity,
		MapToDTO: func(p *produto.Produto) any {
			return dto.FromProduto(p)
		},
	})
}
