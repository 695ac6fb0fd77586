package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "driptime/internal/platform/net/http"
	"driptime/internal/platform/testkit"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{
		ServiceName: "driptime-api",
		StartedAt:   time.Now().Add(-time.Minute),
	})
	return mux
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s = %d", path, rec.Code)
	}
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t), "/health")
	testkit.MustContain(t, rec.Body.String(), `"ok":true`)
	testkit.MustContain(t, rec.Body.String(), "driptime-api")
}

func TestVersion(t *testing.T) {
	rec := get(t, newTestRouter(t), "/version")
	testkit.MustContain(t, rec.Body.String(), `"service":"driptime-api"`)
	testkit.MustContain(t, rec.Body.String(), `"version"`)
}

func TestService(t *testing.T) {
	rec := get(t, newTestRouter(t), "/service")
	testkit.MustContain(t, rec.Body.String(), `"uptime"`)
}

func TestModel(t *testing.T) {
	rec := get(t, newTestRouter(t), "/model")
	body := rec.Body.String()
	testkit.MustContain(t, body, "segmented")
	testkit.MustContain(t, body, "empirical")
	testkit.MustContain(t, body, "synthetic")
	testkit.MustContain(t, body, `"fixed_resolution":100`)
}
