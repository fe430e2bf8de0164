package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lucalvex/hub-projeto-diag-api/internal/middlewares"
)

func TestRateLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middlewares.RateLimiter(2, time.Hour)(ok)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/modulos/x/relatorio", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("BurstThenBlock", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call("10.0.0.1:1234"))
		assert.Equal(t, http.StatusOK, call("10.0.0.1:5555"))
		assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1234"))
	})

	t.Run("IndependentPerIP", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call("10.0.0.2:1234"))
	})

	t.Run("DisabledWhenZero", func(t *testing.T) {
		open := middlewares.RateLimiter(0, time.Minute)(ok)
		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			open.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
