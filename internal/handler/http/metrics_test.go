package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Davidxap/ai-powered-blog-platform/internal/observability/metrics"
)

func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()
	metrics.HTTPRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	tests := []struct {
		name         string
		path         string
		expectedPath string
	}{
		{
			name:         "post with ID should be normalized",
			path:         "/posts/123",
			expectedPath: "/posts/:id",
		},
		{
			name:         "comment listing should be normalized",
			path:         "/posts/456/comments",
			expectedPath: "/posts/:id/comments",
		},
		{
			name:         "static endpoint should remain unchanged",
			path:         "/health",
			expectedPath: "/health",
		},
		{
			name:         "categories listing should remain unchanged",
			path:         "/categories",
			expectedPath: "/categories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			count := testutil.ToFloat64(
				metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, tt.expectedPath, "200"),
			)
			if count < 1 {
				t.Errorf("no requests recorded for normalized path %q", tt.expectedPath)
			}
		})
	}
}

func TestMetricsMiddleware_CardinalityReduction(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Many distinct IDs must collapse into one label value.
	for _, path := range []string{"/posts/1", "/posts/2", "/posts/3", "/posts/999"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	count := testutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/posts/:id", "200"),
	)
	if count != 4 {
		t.Errorf("got %v requests on /posts/:id, want 4", count)
	}
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	statuses := []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	for _, status := range statuses {
		count := testutil.ToFloat64(
			metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/posts", strconv.Itoa(status)),
		)
		if count != 1 {
			t.Errorf("status %d: got %v requests, want 1", status, count)
		}
	}
}

func TestMetricsMiddleware_ActiveConnections(t *testing.T) {
	var during float64

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		during = testutil.ToFloat64(metrics.ActiveConnections)
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.ActiveConnections)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if during != before+1 {
		t.Errorf("active connections during request = %v, want %v", during, before+1)
	}

	after := testutil.ToFloat64(metrics.ActiveConnections)
	if after != before {
		t.Errorf("active connections after request = %v, want %v", after, before)
	}
}

func TestMetricsHandler(t *testing.T) {
	// Record something so the exposition is non-trivial.
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}

	body, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "http_requests_total") {
		t.Error("exposition missing http_requests_total")
	}
}
