package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/sessions/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Baselines before we hit the routes (to avoid interference from other tests)
	baseOK := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/sessions/:id", "200"))
	base404 := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/does-not-exist", "404"))

	// 1) Hit a matched route -> path label is the route pattern, not the raw URL
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/abc", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /sessions/abc -> %d", w.Code)
	}

	// 2) Hit a missing route (no match -> fallback to raw URL path label)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /does-not-exist -> %d", w.Code)
	}

	gotOK := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/sessions/:id", "200"))
	if gotOK != baseOK+1 {
		t.Fatalf("counter /sessions/:id 200 = %v; want %v", gotOK, baseOK+1)
	}
	got404 := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/does-not-exist", "404"))
	if got404 != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got404, base404+1)
	}

	// In-flight gauge should be 0 after requests complete
	if inFlight := testutil.ToFloat64(reqInflight); inFlight != 0 {
		t.Fatalf("reqInflight = %v; want 0", inFlight)
	}

	// Raw URLs with parameters must not leak into the path label.
	if n := testutil.ToFloat64(reqTotal.WithLabelValues("GET", "/sessions/abc", "200")); n != 0 {
		t.Fatalf("raw URL leaked into path label: %v", n)
	}
}

func TestRegisterSessionGauge(t *testing.T) {
	n := 3
	g := RegisterSessionGauge(func() int { return n })

	if got := testutil.ToFloat64(g); got != 3 {
		t.Fatalf("sessions_active = %v; want 3", got)
	}
	n = 0
	if got := testutil.ToFloat64(g); got != 0 {
		t.Fatalf("sessions_active = %v; want 0", got)
	}
}
