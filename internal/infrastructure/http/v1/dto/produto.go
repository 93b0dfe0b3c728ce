package dto

import (
	"catalogodeleite/internal/domain/catalogs/produto"
)

// --- Request DTOs ---

// ProdutoRequest is the request body for creating or replacing a product.
type ProdutoRequest struct {
	Code string `json:"code"`
	Name string `json:"name" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r ProdutoRequest) ToEntity() *produto.Produto {
	return produto.New(r.Code, r.Name)
}

// --- Response DTOs ---

// ProdutoResponse is the response body for a product.
type ProdutoResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FromProduto converts domain entity to response DTO.
func FromProduto(p *produto.Produto) ProdutoResponse {
	return ProdutoResponse{
		Code: p.Code,
		Name: p.Name,
	}
}
