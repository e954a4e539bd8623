package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// routeID parses the {id} URL parameter. On failure it writes a 400
// response and returns false.
func routeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := todo.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, false
	}
	return id, true
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	dto.WriteJSON(w, r, status, v)
}
