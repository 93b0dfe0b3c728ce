// Package catalog_repo provides PostgreSQL implementations for catalog repositories.
package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"catalogodeleite/internal/core/apperror"
	"catalogodeleite/internal/core/entity"
	"catalogodeleite/internal/domain"
	"catalogodeleite/internal/domain/search"
	"catalogodeleite/internal/infrastructure/storage/postgres"
	"catalogodeleite/pkg/tracing"
)

// keyColumn is the primary key of every catalog table.
const keyColumn = "code"

// BaseCatalogRepo provides common CRUD and search for code-keyed catalog entities.
// Embed this in specific catalog repositories.
type BaseCatalogRepo[T entity.Coded] struct {
	txm        *postgres.TxManager
	tableName  string
	selectCols []string
	newFn      func() T
	executor   *PagedSearchExecutor[T]
}

// NewBaseCatalogRepo creates a new base catalog repository.
func NewBaseCatalogRepo[T entity.Coded](
	txm *postgres.TxManager,
	tableName string,
	selectCols []string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		txm:        txm,
		tableName:  tableName,
		selectCols: selectCols,
		newFn:      newFn,
		executor:   NewPagedSearchExecutor[T](tableName, selectCols),
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// baseSelect creates a SELECT builder.
func (r *BaseCatalogRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

func (r *BaseCatalogRepo[T]) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// GetByCode retrieves entity by code.
func (r *BaseCatalogRepo[T]) GetByCode(ctx context.Context, code string) (T, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{keyColumn: code}).
		Limit(1)

	return r.FindOne(ctx, q, code)
}

// FindMatching retrieves entity by code only if the row also satisfies the
// criteria predicate.
func (r *BaseCatalogRepo[T]) FindMatching(ctx context.Context, code string, criteria search.Criteria) (T, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{keyColumn: code}).
		Where(criteria.Predicate).
		Limit(1)

	return r.FindOne(ctx, q, code)
}

// FindOne executes a SELECT query and returns a single entity.
// No row maps to a NotFound AppError naming code.
func (r *BaseCatalogRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, code string) (T, error) {
	entity := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	ctx, span := tracing.StartDatabaseSpan(ctx, tracing.OpQuery, r.tableName, sql)
	defer span.End()

	if err := pgxscan.Get(ctx, r.querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.tableName, code)
		}
		tracing.RecordError(span, err)
		return entity, fmt.Errorf("find one: %w", err)
	}

	return entity, nil
}

// insertQuery builds the INSERT for the entity's mapped columns.
func (r *BaseCatalogRepo[T]) insertQuery(entity T) (squirrel.InsertBuilder, error) {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return squirrel.InsertBuilder{}, fmt.Errorf("no db tags found in entity")
	}

	// Filter to only include columns that exist in DB
	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	return r.Builder().
		Insert(r.tableName).
		SetMap(filteredData), nil
}

// Create inserts a new entity using its "db" tags.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	q, err := r.insertQuery(entity)
	if err != nil {
		return err
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	ctx, span := tracing.StartDatabaseSpan(ctx, tracing.OpInsert, r.tableName, sql)
	defer span.End()

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("insert %s: %w", r.tableName, postgres.ClassifyError(err))
	}

	return nil
}

// updateQuery builds the UPDATE of every mapped column except the key.
func (r *BaseCatalogRepo[T]) updateQuery(entity T) (squirrel.UpdateBuilder, error) {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return squirrel.UpdateBuilder{}, fmt.Errorf("no db tags found in entity")
	}

	// The key is immutable and only appears in WHERE.
	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == keyColumn {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	return r.Builder().
		Update(r.tableName).
		SetMap(filteredData).
		Where(squirrel.Eq{keyColumn: entity.GetCode()}), nil
}

// Update modifies an existing entity.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	q, err := r.updateQuery(entity)
	if err != nil {
		return err
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	ctx, span := tracing.StartDatabaseSpan(ctx, tracing.OpUpdate, r.tableName, sql)
	defer span.End()

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("update %s: %w", r.tableName, postgres.ClassifyError(err))
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entity.GetCode())
	}

	return nil
}

// Delete performs physical removal and reports whether a row existed.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, code string) (bool, error) {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{keyColumn: code})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	ctx, span := tracing.StartDatabaseSpan(ctx, tracing.OpDelete, r.tableName, sql)
	defer span.End()

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		tracing.RecordError(span, err)
		return false, fmt.Errorf("execute delete %s: %w", r.tableName, err)
	}

	return result.RowsAffected() > 0, nil
}

// Search returns one page of matches and the total match count.
func (r *BaseCatalogRepo[T]) Search(ctx context.Context, criteria search.Criteria, window search.Window) (domain.SearchResult[T], error) {
	return r.executor.Execute(ctx, r.querier(ctx), criteria, window)
}
