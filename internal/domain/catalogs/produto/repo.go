package produto

import (
	"catalogodeleite/internal/domain"
)

// Repository defines the interface for Produto persistence.
type Repository interface {
	domain.CatalogRepository[*Produto]
}
