// Package acl is the anti-corruption layer in front of the downstream todo
// API. It keeps the downstream's wire format and error shapes out of the
// domain: translators live in acl/todoapi, error mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

const maxErrorBodySize = 1 << 20

// problemDetail is an RFC 7807 body.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a downstream error response onto a domain error.
// application/problem+json bodies supply the detail text, and their
// field errors become a *domain.ValidationError on 400 and 422.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		// 401/403 mean our own credentials are wrong; that is our fault, not
		// the caller's, so it stays unclassified.
		return fmt.Errorf("unexpected status %d from todo-api: %s", resp.StatusCode, detail)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." prefix downstream puts on locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[translateField(strings.TrimPrefix(d.Location, "body."))] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// translateField renames downstream fields to the names our clients sent.
func translateField(field string) string {
	switch field {
	case "title":
		return "text"
	case "done":
		return "completed"
	default:
		return field
	}
}
