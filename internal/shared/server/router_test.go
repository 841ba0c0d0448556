package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"prism-backend/internal/services/health"
	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/telemetry"
)

func TestRouterHealthAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	r := NewRouter(RouterDeps{
		Config: config.Config{Env: "dev"},
		Health: health.NewService("gemini", "gemini-2.5-flash-lite", false),
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var status health.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !status.OK || status.CredentialPresent {
		t.Fatalf("unexpected health: %+v", status)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(resp.Body.String(), "generation_started_total") {
		t.Fatalf("expected metrics output, got %q", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9090": ":9090", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
