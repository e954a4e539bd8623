package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withPayload(r *http.Request, payload map[string]any) *http.Request {
	return r.WithContext(dto.WithPayload(r.Context(), payload))
}

func validTodo() todo.Todo {
	return todo.Todo{ID: 1, Text: "buy milk"}
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	got := decodeJSON[dto.ErrorResponse](t, rec)
	if want == "" {
		if got.Error == "" {
			t.Error("error body is empty")
		}
		return
	}
	if got.Error != want {
		t.Errorf("error = %q, want %q", got.Error, want)
	}
}
