package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/lucalvex/hub-projeto-diag-api/internal/metrics"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	metrics.Init()
	metrics.Init()

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/questionario/modulos/{nome}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/questionario/modulos/{nome}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/questionario/modulos/Financeiro", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	after := testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/questionario/modulos/{nome}", "418"))
	assert.Equal(t, before+1, after)
}

func TestHandlerExposesCollectors(t *testing.T) {
	metrics.Init()
	metrics.SubmissionsTotal.WithLabelValues(metrics.ResultOK).Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "diag_submissions_total")
}
