package search

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicate(t *testing.T) {
	tests := []struct {
		name     string
		class    Classification
		query    string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "code prefix",
			class:    ByCode,
			query:    "123",
			wantSQL:  "SELECT code, name FROM produto WHERE code LIKE $1",
			wantArgs: []any{"123%"},
		},
		{
			name:     "name substring",
			class:    ByName,
			query:    "Leite",
			wantSQL:  "SELECT code, name FROM produto WHERE name ILIKE $1",
			wantArgs: []any{"%Leite%"},
		},
		{
			name:     "metacharacters are escaped",
			class:    ByName,
			query:    `50%_off\`,
			wantSQL:  "SELECT code, name FROM produto WHERE name ILIKE $1",
			wantArgs: []any{`%50\%\_off\\%`},
		},
		{
			name:     "injection attempt is bound",
			class:    ByName,
			query:    "x'; DROP TABLE produto; --",
			wantSQL:  "SELECT code, name FROM produto WHERE name ILIKE $1",
			wantArgs: []any{"%x'; DROP TABLE produto; --%"},
		},
		{
			name:    "unknown classification matches nothing",
			class:   Classification(99),
			query:   "123",
			wantSQL: "SELECT code, name FROM produto WHERE FALSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sq.Select("code", "name").From("produto").
				Where(Predicate(tt.class, tt.query)).
				PlaceholderFormat(sq.Dollar)

			sql, args, err := q.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sort SortSpec
		want []string
	}{
		{
			name: "empty",
			sort: SortSpec{},
			want: nil,
		},
		{
			name: "columns with directions",
			sort: SortSpec{Columns: []string{"name", "code"}, Directions: []string{"desc", "ASC"}},
			want: []string{"name DESC", "code ASC"},
		},
		{
			name: "unknown column dropped, direction stays aligned",
			sort: SortSpec{Columns: []string{"price", "name"}, Directions: []string{"ASC", "desc"}},
			want: []string{"name DESC"},
		},
		{
			name: "unknown direction dropped, column kept",
			sort: SortSpec{Columns: []string{"code"}, Directions: []string{"sideways"}},
			want: []string{"code"},
		},
		{
			name: "fewer directions than columns",
			sort: SortSpec{Columns: []string{"code", "name"}, Directions: []string{"desc"}},
			want: []string{"code DESC", "name"},
		},
		{
			name: "column names are case sensitive",
			sort: SortSpec{Columns: []string{"NAME", "code; DROP TABLE produto"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderBy(tt.sort))
		})
	}
}

func TestBuildCriteria(t *testing.T) {
	c := BuildCriteria(ByCode, "100", SortSpec{Columns: []string{"code"}, Directions: []string{"asc"}})

	assert.Equal(t, ByCode, c.Classification)
	assert.Equal(t, "100", c.Query)
	assert.Equal(t, []string{"code ASC"}, c.OrderBy)

	sql, args, err := c.Predicate.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "code LIKE ?", sql)
	assert.Equal(t, []any{"100%"}, args)
}

func TestOrderByProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genColumn := gen.OneConstOf("code", "name", "id", "price", "Code", "name ")
	genDirection := gen.OneConstOf("ASC", "desc", "Asc", "up", "", "DESCENDING")

	properties.Property("only whitelisted columns are emitted, in input order", prop.ForAll(
		func(cols, dirs []string) bool {
			clauses := OrderBy(SortSpec{Columns: cols, Directions: dirs})

			var kept []string
			for _, col := range cols {
				if col == CodeColumn || col == NameColumn {
					kept = append(kept, col)
				}
			}
			if len(clauses) != len(kept) {
				return false
			}
			for i, clause := range clauses {
				if strings.Fields(clause)[0] != kept[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genColumn),
		gen.SliceOf(genDirection),
	))

	properties.Property("a direction is emitted only for ASC or DESC tokens", prop.ForAll(
		func(dir string) bool {
			clauses := OrderBy(SortSpec{Columns: []string{"name"}, Directions: []string{dir}})
			if len(clauses) != 1 {
				return false
			}
			switch strings.ToUpper(dir) {
			case "ASC", "DESC":
				return clauses[0] == "name "+strings.ToUpper(dir)
			default:
				return clauses[0] == "name"
			}
		},
		genDirection,
	))

	properties.TestingRun(t)
}
