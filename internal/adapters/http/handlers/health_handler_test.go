package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-spa-service/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[map[string]string](t, rec); resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		wantBody   string
		wantChecks map[string]string
	}{
		{
			name:       "no checks registered",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			wantBody:   "ready",
			wantChecks: map[string]string{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"sqlite": nil},
			wantStatus: http.StatusOK,
			wantBody:   "ready",
			wantChecks: map[string]string{"sqlite": "ok"},
		},
		{
			name:       "one failing",
			results:    map[string]error{"postgres": errors.New("dial tcp 10.0.0.5:5432: refused"), "remote": nil},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not_ready",
			wantChecks: map[string]string{"postgres": "unavailable", "remote": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantStatus)
			if strings.Contains(rec.Body.String(), "10.0.0.5") {
				t.Errorf("body leaked check error: %s", rec.Body.String())
			}

			resp := decodeJSON[struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}](t, rec)
			if resp.Status != tt.wantBody {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantBody)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
