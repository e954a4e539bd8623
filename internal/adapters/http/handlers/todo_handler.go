package handlers

import (
	"maps"
	"net/http"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-spa-service/internal/app"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

// TodoHandler maps the /api/todos routes onto the todo use-cases. A fresh
// use-case is built for every request; the handler itself holds no state
// besides the repository it hands to them.
type TodoHandler struct {
	repo ports.TodoRepository
}

// NewTodoHandler creates a TodoHandler backed by repo.
func NewTodoHandler(repo ports.TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

// ListTodos handles GET /api/todos[?completed=true|false].
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	completed, err := todo.ParseCompleted(r.URL.Query().Get("completed"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := app.NewGetTodos(h.repo).Execute(r.Context(), todo.Filter{Completed: completed})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /api/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	t, err := app.NewGetTodo(h.repo).Execute(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// CreateTodo handles POST /api/todos with a JSON or form body.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	input, err := todo.NewCreateTodoDTO(dto.PayloadFromContext(r.Context()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := app.NewCreateTodo(h.repo).Execute(r.Context(), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PUT and PATCH /api/todos/{id}. The route ID always
// wins over any "id" in the body.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	payload := maps.Clone(dto.PayloadFromContext(r.Context()))
	payload["id"] = id

	input, err := todo.NewUpdateTodoDTO(payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := app.NewUpdateTodo(h.repo).Execute(r.Context(), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/todos/{id} and echoes the removed todo.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(w, r)
	if !ok {
		return
	}

	deleted, err := app.NewDeleteTodo(h.repo).Execute(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(deleted))
}
