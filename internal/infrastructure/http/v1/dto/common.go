// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Search ---

// SearchRequest holds the query string of a catalog search.
// sort and order are repeated parameters read as parallel lists.
type SearchRequest struct {
	Query  string   `form:"query"`
	Offset *int     `form:"offset"`
	Limit  *int     `form:"limit"`
	Sort   []string `form:"sort"`
	Order  []string `form:"order"`
}

// SearchResponse wraps one window of matches with the full match count.
type SearchResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}
