package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/middleware"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+":before")
				next.ServeHTTP(w, r)
				order = append(order, name+":after")
			})
		}
	}

	h := middleware.Chain(mw("outer"), mw("inner"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	want := []string{"outer:before", "inner:before", "handler", "inner:after", "outer:after"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	rec := serve(middleware.Chain()(okHandler("bare")), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if rec.Body.String() != "bare" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "bare")
	}
}

func TestChain_CrossCuttingPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	h := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if middleware.CorrelationIDFromContext(r.Context()) == "" {
			t.Error("correlation ID not in context")
		}
		w.WriteHeader(http.StatusCreated)
	}))

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/todos", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("X-Correlation-ID") == "" {
		t.Errorf("missing ID headers: %v", rec.Header())
	}
	if out := buf.String(); !strings.Contains(out, "request completed") || !strings.Contains(out, "status=201") {
		t.Errorf("log output = %q, want completion line with status=201", out)
	}
}
