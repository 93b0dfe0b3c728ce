package produto

import (
	"catalogodeleite/internal/core/tx"
	"catalogodeleite/internal/domain"
)

// Service provides business logic for the product catalog.
// Uses composition with domain.CatalogService for CRUD and search.
type Service struct {
	*domain.CatalogService[*Produto]
}

// Options carries the optional collaborators of the service.
type Options struct {
	TxManager      tx.Manager
	Snapshot       tx.SnapshotReader
	Recorder       domain.SearchRecorder
	MinQueryLength int
}

// NewService creates a new Produto service.
func NewService(repo Repository, opts Options) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Produto]{
			Repo:           repo,
			TxManager:      opts.TxManager,
			Snapshot:       opts.Snapshot,
			Recorder:       opts.Recorder,
			EntityName:     EntityName,
			MinQueryLength: opts.MinQueryLength,
		}),
	}
}
