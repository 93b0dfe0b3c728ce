package domain

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"catalogodeleite/internal/core/apperror"
	"catalogodeleite/internal/core/entity"
	"catalogodeleite/internal/core/tx"
	"catalogodeleite/internal/domain/search"
	"catalogodeleite/pkg/logger"
)

// SearchRecorder receives one observation per executed search.
type SearchRecorder interface {
	ObserveSearch(classification string, windowed bool, totalCount int64)
}

// SearchQuery is a free-text search with optional paging and ordering.
type SearchQuery struct {
	Query  string
	Offset *int
	Limit  *int
	Sort   search.SortSpec
}

// CatalogService provides business logic for code-keyed catalog entities.
// It is stateless across calls; all state lives behind the repository.
type CatalogService[T entity.Coded] struct {
	repo       CatalogRepository[T]
	txManager  tx.Manager        // Optional - mutations run directly when nil
	snapshot   tx.SnapshotReader // Optional - search count and rows share one snapshot when set
	recorder   SearchRecorder
	classifier search.Classifier

	// entityName for error messages
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T entity.Coded] struct {
	Repo           CatalogRepository[T]
	TxManager      tx.Manager
	Snapshot       tx.SnapshotReader
	Recorder       SearchRecorder
	EntityName     string
	MinQueryLength int
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T entity.Coded](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		snapshot:   cfg.Snapshot,
		recorder:   cfg.Recorder,
		classifier: search.NewClassifier(cfg.MinQueryLength),
		entityName: cfg.EntityName,
	}
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, code string) error {
	if err == nil {
		return nil
	}
	// Preserve existing AppError, but ensure not-found is mapped to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, code)
	}
	return s.normalizeStorageErr(err)
}

func (s *CatalogService[T]) normalizeStorageErr(err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewDatabase(err).WithDetail("entity", s.entityName)
}

func (s *CatalogService[T]) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.RunInTransaction(ctx, fn)
}

// GetByCode retrieves entity by code.
func (s *CatalogService[T]) GetByCode(ctx context.Context, code string) (T, error) {
	entity, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return entity, s.normalizeGetErr(err, code)
	}
	return entity, nil
}

// Create creates a new catalog entity.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.inTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entity); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			logger.Warn(ctx, "duplicate code on create", "entity", s.entityName, "code", entity.GetCode())
			return apperror.NewDuplicate(s.entityName, "code", entity.GetCode()).WithCause(err)
		}
		return s.normalizeStorageErr(err)
	}

	return nil
}

// Update replaces the mutable fields of the entity stored under code.
// The entity's own code must equal code.
func (s *CatalogService[T]) Update(ctx context.Context, code string, entity T) error {
	if entity.GetCode() != code {
		return apperror.NewValidation(fmt.Sprintf("%s code cannot be changed", s.entityName)).
			WithDetail("code", code).
			WithDetail("bodyCode", entity.GetCode())
	}

	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.inTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entity); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return s.normalizeGetErr(err, code)
	}

	return nil
}

// Delete removes the entity stored under code. Deleting an absent code is not an error.
func (s *CatalogService[T]) Delete(ctx context.Context, code string) error {
	var existed bool
	err := s.inTransaction(ctx, func(ctx context.Context) error {
		var err error
		existed, err = s.repo.Delete(ctx, code)
		if err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return s.normalizeStorageErr(err)
	}

	if !existed {
		logger.Debug(ctx, "delete of absent code", "entity", s.entityName, "code", code)
	}
	return nil
}

// Search classifies the query, builds the criteria and returns one page of
// matches together with the total match count.
func (s *CatalogService[T]) Search(ctx context.Context, q SearchQuery) (SearchResult[T], error) {
	if utf8.RuneCountInString(q.Query) < s.classifier.MinLength() {
		return SearchResult[T]{}, apperror.NewValidation(
			fmt.Sprintf("query must have at least %d characters", s.classifier.MinLength())).
			WithDetail("query", q.Query)
	}

	class := s.classifier.Classify(q.Query)
	criteria := search.BuildCriteria(class, q.Query, q.Sort)
	window := search.NewWindow(q.Offset, q.Limit)

	var result SearchResult[T]
	run := func(ctx context.Context) error {
		var err error
		result, err = s.repo.Search(ctx, criteria, window)
		return err
	}

	var err error
	if s.snapshot != nil {
		err = s.snapshot.ReadSnapshot(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return SearchResult[T]{}, s.normalizeStorageErr(fmt.Errorf("search %s: %w", s.entityName, err))
	}

	if s.recorder != nil {
		s.recorder.ObserveSearch(class.String(), window.Applies(), result.TotalCount)
	}
	logger.Debug(ctx, "search executed",
		"entity", s.entityName,
		"classification", class.String(),
		"order_by", criteria.OrderBy,
		"windowed", window.Applies(),
		"total", result.TotalCount,
		"returned", len(result.Items),
	)

	return result, nil
}

// GetIfSatisfiesQuery returns the entity stored under code only if it also
// matches the predicate the query would be searched with.
func (s *CatalogService[T]) GetIfSatisfiesQuery(ctx context.Context, query, code string) (T, error) {
	class := s.classifier.Classify(query)
	criteria := search.BuildCriteria(class, query, search.SortSpec{})

	entity, err := s.repo.FindMatching(ctx, code, criteria)
	if err != nil {
		if apperror.IsNotFound(err) {
			return entity, apperror.NewNotFoundInSearch(s.entityName, code, query)
		}
		return entity, s.normalizeStorageErr(err)
	}
	return entity, nil
}
