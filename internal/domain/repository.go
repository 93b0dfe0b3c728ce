// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"errors"

	"catalogodeleite/internal/core/entity"
	"catalogodeleite/internal/domain/search"
)

// ErrDuplicateKey is the storage fault class for uniqueness violations.
// Storage adapters wrap their driver error with it; services test with errors.Is.
var ErrDuplicateKey = errors.New("duplicate key")

// SearchResult pairs one page of items with the total number of matches.
// TotalCount ignores the window; len(Items) never exceeds an applied limit.
type SearchResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

// --- Repository Interfaces ---

// CatalogRepository defines persistence for code-keyed catalog entities.
type CatalogRepository[T entity.Coded] interface {
	// GetByCode retrieves entity by code. Returns a NotFound AppError if absent.
	GetByCode(ctx context.Context, code string) (T, error)

	// FindMatching retrieves entity by code only if it also satisfies the
	// criteria predicate. Returns a NotFound AppError otherwise.
	FindMatching(ctx context.Context, code string, criteria search.Criteria) (T, error)

	// Create inserts a new entity. Uniqueness violations wrap ErrDuplicateKey.
	Create(ctx context.Context, entity T) error

	// Update rewrites the mutable fields of the entity with the same code.
	// Returns a NotFound AppError when no row matched.
	Update(ctx context.Context, entity T) error

	// Delete removes the entity and reports whether a row existed.
	Delete(ctx context.Context, code string) (bool, error)

	// Search returns the page selected by window together with the total match count.
	Search(ctx context.Context, criteria search.Criteria, window search.Window) (SearchResult[T], error)
}
