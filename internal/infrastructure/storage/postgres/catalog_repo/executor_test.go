package catalog_repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogodeleite/internal/domain/catalogs/produto"
	"catalogodeleite/internal/domain/search"
)

func intPtr(v int) *int { return &v }

func newTestExecutor() *PagedSearchExecutor[*produto.Produto] {
	return NewPagedSearchExecutor[*produto.Produto]("produto", []string{"code", "name"})
}

func TestPagedSearchExecutor_Queries(t *testing.T) {
	exec := newTestExecutor()

	tests := []struct {
		name      string
		criteria  search.Criteria
		window    search.Window
		wantCount string
		wantRows  string
		wantArgs  []any
	}{
		{
			name:      "code search, no sort, no window",
			criteria:  search.BuildCriteria(search.ByCode, "123", search.SortSpec{}),
			window:    search.Window{},
			wantCount: "SELECT COUNT(*) FROM produto WHERE code LIKE $1",
			wantRows:  "SELECT code, name FROM produto WHERE code LIKE $1",
			wantArgs:  []any{"123%"},
		},
		{
			name: "name search, sorted and windowed",
			criteria: search.BuildCriteria(search.ByName, "leite", search.SortSpec{
				Columns:    []string{"name", "price", "code"},
				Directions: []string{"desc", "asc", "up"},
			}),
			window:    search.NewWindow(intPtr(20), intPtr(10)),
			wantCount: "SELECT COUNT(*) FROM produto WHERE name ILIKE $1",
			wantRows:  "SELECT code, name FROM produto WHERE name ILIKE $1 ORDER BY name DESC, code LIMIT 10 OFFSET 20",
			wantArgs:  []any{"%leite%"},
		},
		{
			name:      "negative offset disables window",
			criteria:  search.BuildCriteria(search.ByName, "leite", search.SortSpec{Columns: []string{"code"}}),
			window:    search.NewWindow(intPtr(-1), intPtr(10)),
			wantCount: "SELECT COUNT(*) FROM produto WHERE name ILIKE $1",
			wantRows:  "SELECT code, name FROM produto WHERE name ILIKE $1 ORDER BY code",
			wantArgs:  []any{"%leite%"},
		},
		{
			name:      "zero limit disables window",
			criteria:  search.BuildCriteria(search.ByCode, "100", search.SortSpec{}),
			window:    search.NewWindow(intPtr(0), intPtr(0)),
			wantCount: "SELECT COUNT(*) FROM produto WHERE code LIKE $1",
			wantRows:  "SELECT code, name FROM produto WHERE code LIKE $1",
			wantArgs:  []any{"100%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			countSQL, countArgs, err := exec.CountQuery(tt.criteria).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, countSQL)
			assert.Equal(t, tt.wantArgs, countArgs)

			rowsSQL, rowsArgs, err := exec.RowsQuery(tt.criteria, tt.window).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rowsSQL)
			assert.Equal(t, tt.wantArgs, rowsArgs)
		})
	}
}

func TestPagedSearchExecutor_Execute(t *testing.T) {
	q := &fakeQuerier{
		count: 42,
		rows:  [][]string{{"101", "Leite Integral"}, {"102", "Leite Desnatado"}},
	}
	criteria := search.BuildCriteria(search.ByName, "leite", search.SortSpec{Columns: []string{"code"}})

	result, err := newTestExecutor().Execute(context.Background(), q, criteria, search.NewWindow(intPtr(0), intPtr(2)))
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "101", result.Items[0].Code)
	assert.Equal(t, "Leite Desnatado", result.Items[1].Name)

	require.Len(t, q.calls, 2)
	assert.Equal(t, "SELECT COUNT(*) FROM produto WHERE name ILIKE $1", q.calls[0].sql)
	assert.Equal(t, "SELECT code, name FROM produto WHERE name ILIKE $1 ORDER BY code LIMIT 2 OFFSET 0", q.calls[1].sql)
	assert.Equal(t, q.calls[0].args, q.calls[1].args)
}

func TestPagedSearchExecutor_EmptyResult(t *testing.T) {
	q := &fakeQuerier{}
	criteria := search.BuildCriteria(search.ByCode, "999", search.SortSpec{})

	result, err := newTestExecutor().Execute(context.Background(), q, criteria, search.Window{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.TotalCount)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestPagedSearchExecutor_StorageFaults(t *testing.T) {
	criteria := search.BuildCriteria(search.ByCode, "123", search.SortSpec{})
	boom := errors.New("connection reset")

	_, err := newTestExecutor().Execute(context.Background(), &fakeQuerier{countErr: boom}, criteria, search.Window{})
	assert.ErrorIs(t, err, boom)

	_, err = newTestExecutor().Execute(context.Background(), &fakeQuerier{queryErr: boom}, criteria, search.Window{})
	assert.ErrorIs(t, err, boom)
}
