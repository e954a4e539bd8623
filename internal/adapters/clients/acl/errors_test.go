package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: domain.ErrNotFound},
		{status: http.StatusBadRequest, want: domain.ErrValidation},
		{status: http.StatusUnprocessableEntity, want: domain.ErrValidation},
		{status: http.StatusConflict, want: domain.ErrConflict},
		{status: http.StatusTooManyRequests, want: domain.ErrUnavailable},
		{status: http.StatusInternalServerError, want: domain.ErrUnavailable},
		{status: http.StatusBadGateway, want: domain.ErrUnavailable},
		{status: http.StatusServiceUnavailable, want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			got := TranslateHTTPError(response(tt.status, "", ""))
			if !errors.Is(got, tt.want) {
				t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTranslateHTTPError_UnclassifiedStatuses(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrUnavailable,
	}

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusTeapot} {
		got := TranslateHTTPError(response(status, "", ""))
		for _, s := range sentinels {
			if errors.Is(got, s) {
				t.Errorf("TranslateHTTPError(%d) matches %v, want unclassified", status, s)
			}
		}
	}
}

func TestTranslateHTTPError_ProblemDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "detail from problem body",
			contentType: "application/problem+json",
			body:        `{"title":"Not Found","status":404,"detail":"todo 42 does not exist"}`,
			wantSubstr:  "todo 42 does not exist",
		},
		{
			name:        "plain body ignored",
			contentType: "text/plain",
			body:        "nope",
			wantSubstr:  "Not Found",
		},
		{
			name:        "malformed problem body ignored",
			contentType: "application/problem+json",
			body:        "{",
			wantSubstr:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TranslateHTTPError(response(http.StatusNotFound, tt.contentType, tt.body))
			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrorsUseOurNames(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.title", "message": "must not be empty"},
			{"location": "body.done", "message": "must be a boolean"},
			{"location": "query.limit", "message": "too large"}
		]
	}`

	got := TranslateHTTPError(response(http.StatusUnprocessableEntity, "application/problem+json", body))

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", got)
	}
	want := map[string]string{
		"text":        "must not be empty",
		"completed":   "must be a boolean",
		"query.limit": "too large",
	}
	for k, v := range want {
		if verr.Fields[k] != v {
			t.Errorf("Fields[%q] = %q, want %q", k, verr.Fields[k], v)
		}
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
	}
	if got := TranslateHTTPError(resp); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("TranslateHTTPError() = %v, want ErrNotFound", got)
	}
}
