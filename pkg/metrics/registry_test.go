package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, r *Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestRegistry_SearchMetrics(t *testing.T) {
	r := NewRegistry()
	r.ObserveSearch("code", true, 3)
	r.ObserveSearch("name", false, 0)

	body := scrape(t, r)
	assert.Contains(t, body, `catalog_search_total{classification="code",windowed="true"} 1`)
	assert.Contains(t, body, `catalog_search_total{classification="name",windowed="false"} 1`)
	assert.Contains(t, body, `catalog_search_results_count{classification="code"} 1`)
}

func TestRegistry_HTTPMetrics(t *testing.T) {
	r := NewRegistry()
	r.IncrementInFlight()
	r.RecordHTTPMetrics(http.MethodGet, "/api/produtos/search", http.StatusOK, 15*time.Millisecond)
	r.DecrementInFlight()

	body := scrape(t, r)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/produtos/search",status="200"} 1`)
	assert.Contains(t, body, "http_requests_in_flight 0")
}

func TestRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.ObserveSearch("code", false, 1)

	assert.NotContains(t, scrape(t, b), `catalog_search_total{`)
}
