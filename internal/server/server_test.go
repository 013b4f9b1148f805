package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

type staticSource struct{ obs []chart.Observation }

func (s *staticSource) Fetch(ctx context.Context) ([]chart.Observation, error) {
	return s.obs, nil
}

func (s *staticSource) Name() string { return "static:test" }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, nil)
	base := pipeline.Options{
		Source: &staticSource{obs: []chart.Observation{
			{Category: "mesh_mold", Series: "approved", Value: 1200},
			{Category: "mesh_mold", Series: "rejected", Value: 100},
			{Category: "curing", Series: "approved", Value: 800},
		}},
	}
	return New(runner, "", nil, WithBaseOptions(base))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestChartSVG(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/chart.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if got := rec.Header().Get("X-Cache-Render"); got != "miss" {
		t.Errorf("X-Cache-Render = %q, want miss", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body does not start with <svg: %.60s", rec.Body.String())
	}
}

func TestChartJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/chart.json?theme=dark", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var fig struct {
		Theme   string `json:"theme"`
		Sectors []any  `json:"sectors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fig); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if fig.Theme != "dark" {
		t.Errorf("theme = %q, want dark", fig.Theme)
	}
	if len(fig.Sectors) != 3 {
		t.Errorf("sector count = %d, want 3", len(fig.Sectors))
	}
}

func TestChartBadQueryParam(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		url  string
	}{
		{"bad width", "/v1/chart.svg?width=abc"},
		{"bad ticks", "/v1/chart.svg?ticks=many"},
		{"bad theme", "/v1/chart.svg?theme=sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
			var env struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if env.Error.Code == "" {
				t.Error("error envelope missing code")
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID not set")
		}
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
			t.Errorf("X-Request-ID = %q, want req-123", got)
		}
	})
}

func TestChartNotFoundRoute(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/chart.gif", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
