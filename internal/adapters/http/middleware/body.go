package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"

	msgBodyTooLarge = "request body too large"
)

// JSONBody decodes application/json request bodies of at most maxBytes into
// a map[string]any and stores it with dto.WithPayload. Numbers are kept as
// json.Number so large IDs survive intact. An empty body leaves the payload
// unset. Malformed JSON or a non-object body is rejected with 400.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasMediaType(r, mediaTypeJSON) {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			dec := json.NewDecoder(r.Body)
			dec.UseNumber()

			var payload map[string]any
			err := dec.Decode(&payload)
			switch {
			case errors.Is(err, io.EOF):
				next.ServeHTTP(w, r)
				return
			case err != nil:
				writeBodyError(w, r, err, "must be a valid JSON object")
				return
			case dec.More():
				writeBodyError(w, r, nil, "must contain a single JSON object")
				return
			}

			next.ServeHTTP(w, r.WithContext(dto.WithPayload(r.Context(), payload)))
		})
	}
}

// FormBody parses application/x-www-form-urlencoded bodies of at most
// maxBytes and stores the first value of every field with dto.WithPayload.
func FormBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasMediaType(r, mediaTypeForm) {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			if err := r.ParseForm(); err != nil {
				writeBodyError(w, r, err, "must be a valid form")
				return
			}

			payload := make(map[string]any, len(r.PostForm))
			for key, vals := range r.PostForm {
				if len(vals) > 0 {
					payload[key] = vals[0]
				}
			}

			next.ServeHTTP(w, r.WithContext(dto.WithPayload(r.Context(), payload)))
		})
	}
}

// BodyParsers is JSONBody followed by FormBody. At most one of them acts on
// a given request, chosen by its Content-Type.
func BodyParsers(maxBytes int64) func(http.Handler) http.Handler {
	return Chain(JSONBody(maxBytes), FormBody(maxBytes))
}

func hasMediaType(r *http.Request, want string) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == want
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		dto.WriteJSON(w, r, http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: msgBodyTooLarge})
		return
	}
	dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
}
