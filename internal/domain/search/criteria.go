package search

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Searchable columns. ORDER BY only ever emits these identifiers.
const (
	CodeColumn = "code"
	NameColumn = "name"
)

var sortableColumns = map[string]struct{}{
	CodeColumn: {},
	NameColumn: {},
}

// likeEscaper escapes LIKE metacharacters so user input is matched literally.
// PostgreSQL uses backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SortSpec carries the caller's parallel sort arrays.
// Directions[i] applies to Columns[i].
type SortSpec struct {
	Columns    []string
	Directions []string
}

// Criteria is the single description of a search shared by the count query
// and the row query.
type Criteria struct {
	Classification Classification
	Query          string
	Predicate      sq.Sqlizer
	OrderBy        []string
}

// BuildCriteria turns a classified query and a sort spec into a parameterized
// predicate and an ORDER BY list. It never fails: unknown sort tokens are dropped.
func BuildCriteria(class Classification, query string, sort SortSpec) Criteria {
	return Criteria{
		Classification: class,
		Query:          query,
		Predicate:      Predicate(class, query),
		OrderBy:        OrderBy(sort),
	}
}

// Predicate returns the WHERE condition for a classified query.
// The query is always bound as a parameter.
func Predicate(class Classification, query string) sq.Sqlizer {
	escaped := likeEscaper.Replace(query)
	switch class {
	case ByCode:
		return sq.Like{CodeColumn: escaped + "%"}
	case ByName:
		return sq.ILike{NameColumn: "%" + escaped + "%"}
	default:
		// Unknown classifications match nothing.
		return sq.Expr("FALSE")
	}
}

// OrderBy filters the sort columns through the whitelist and attaches ASC or
// DESC when the direction at the same index is one of them (case-insensitive).
// Columns keep their original relative order. An empty result means no ORDER BY.
func OrderBy(sort SortSpec) []string {
	var clauses []string
	for i, col := range sort.Columns {
		if _, ok := sortableColumns[col]; !ok {
			continue
		}
		clause := col
		if i < len(sort.Directions) {
			switch dir := strings.ToUpper(strings.TrimSpace(sort.Directions[i])); dir {
			case "ASC", "DESC":
				clause += " " + dir
			}
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
