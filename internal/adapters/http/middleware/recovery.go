package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
)

// Recovery turns a panic in a downstream handler into a logged stack trace
// and a generic 500 `{"error": ...}` response. Nothing is written when the
// handler already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteJSON(rw, r, http.StatusInternalServerError,
						dto.ErrorResponse{Error: dto.MsgInternalError})
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
