package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"catalogodeleite/internal/domain"
	"catalogodeleite/internal/domain/search"
	"catalogodeleite/internal/infrastructure/storage/postgres"
	"catalogodeleite/pkg/tracing"
)

// PagedSearchExecutor runs the count query and the windowed row query for one
// search criteria. Both statements are built from the same predicate.
type PagedSearchExecutor[T any] struct {
	tableName  string
	selectCols []string
}

// NewPagedSearchExecutor creates an executor over one table.
func NewPagedSearchExecutor[T any](tableName string, selectCols []string) *PagedSearchExecutor[T] {
	return &PagedSearchExecutor[T]{
		tableName:  tableName,
		selectCols: selectCols,
	}
}

func (e *PagedSearchExecutor[T]) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// CountQuery counts every row matching the predicate. No ordering, no window.
func (e *PagedSearchExecutor[T]) CountQuery(criteria search.Criteria) squirrel.SelectBuilder {
	return e.builder().
		Select("COUNT(*)").
		From(e.tableName).
		Where(criteria.Predicate)
}

// RowsQuery selects the matching rows in criteria order. LIMIT/OFFSET are
// added only when the window applies.
func (e *PagedSearchExecutor[T]) RowsQuery(criteria search.Criteria, window search.Window) squirrel.SelectBuilder {
	q := e.builder().
		Select(e.selectCols...).
		From(e.tableName).
		Where(criteria.Predicate)

	if len(criteria.OrderBy) > 0 {
		q = q.OrderBy(criteria.OrderBy...)
	}

	if window.Applies() {
		offset, limit := window.Bounds()
		q = q.Limit(limit).Offset(offset)
	}

	return q
}

// Execute issues the count and row queries back to back on querier.
// An empty match is a valid result with zero total and no items.
func (e *PagedSearchExecutor[T]) Execute(
	ctx context.Context,
	querier postgres.Querier,
	criteria search.Criteria,
	window search.Window,
) (domain.SearchResult[T], error) {
	result := domain.SearchResult[T]{Items: []T{}}

	countSQL, countArgs, err := e.CountQuery(criteria).ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	countCtx, span := tracing.StartDatabaseSpan(ctx, tracing.OpCount, e.tableName, countSQL)
	err = querier.QueryRow(countCtx, countSQL, countArgs...).Scan(&result.TotalCount)
	tracing.RecordError(span, err)
	span.End()
	if err != nil {
		return result, fmt.Errorf("count %s: %w", e.tableName, err)
	}

	sql, args, err := e.RowsQuery(criteria, window).ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	rowsCtx, span := tracing.StartDatabaseSpan(ctx, tracing.OpQuery, e.tableName, sql)
	err = pgxscan.Select(rowsCtx, querier, &result.Items, sql, args...)
	tracing.RecordError(span, err)
	span.End()
	if err != nil {
		return result, fmt.Errorf("search %s: %w", e.tableName, err)
	}

	return result, nil
}
