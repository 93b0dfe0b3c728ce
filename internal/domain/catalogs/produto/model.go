// Package produto provides the product catalog: a unique code plus a name,
// searchable by code prefix or by name substring.
package produto

import (
	"catalogodeleite/internal/core/entity"
)

// EntityName is used in error messages and logs.
const EntityName = "product"

// Produto is a catalog product. The code is immutable once created.
type Produto struct {
	entity.Catalog
}

// New creates a Produto.
func New(code, name string) *Produto {
	return &Produto{Catalog: entity.NewCatalog(code, name)}
}
