// Package search holds the store-agnostic part of the catalog search engine:
// query classification, predicate and ORDER BY construction, and the
// offset/limit window.
package search

// DefaultMinQueryLength is the shortest query accepted by search, and also the
// shortest all-digit query treated as a code lookup.
const DefaultMinQueryLength = 3

// Classification selects which column a query is matched against.
type Classification int

const (
	// ByName matches the query as a case-insensitive substring of the name.
	ByName Classification = iota
	// ByCode matches the query as a prefix of the code.
	ByCode
)

// String returns the label used in logs and metrics.
func (c Classification) String() string {
	switch c {
	case ByCode:
		return "code"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// Classifier decides whether a query denotes a code or a name.
type Classifier struct {
	minLength int
}

// NewClassifier creates a classifier. Values below 1 fall back to DefaultMinQueryLength.
func NewClassifier(minLength int) Classifier {
	if minLength < 1 {
		minLength = DefaultMinQueryLength
	}
	return Classifier{minLength: minLength}
}

// MinLength returns the configured minimum query length.
func (c Classifier) MinLength() int {
	return c.minLength
}

// Classify returns ByCode when query consists only of ASCII digits and is at
// least MinLength long, ByName otherwise.
func (c Classifier) Classify(query string) Classification {
	if len(query) < c.minLength {
		return ByName
	}
	for i := 0; i < len(query); i++ {
		if query[i] < '0' || query[i] > '9' {
			return ByName
		}
	}
	return ByCode
}
