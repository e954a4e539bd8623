package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// TodoRepository persists and retrieves todos. Implemented by the storage
// adapters (memory, sqlite, postgres, remote); called by the use-cases.
type TodoRepository interface {
	// List returns the todos matching filter, ordered by ID.
	// Pass a zero-value Filter to list all todos.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// FindByID returns a single todo.
	// Returns a *domain.NotFoundError if the todo does not exist.
	FindByID(ctx context.Context, id int64) (*todo.Todo, error)

	// Create stores a new todo and returns it with its assigned ID.
	Create(ctx context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error)

	// Update applies the DTO's non-nil fields to an existing todo and returns
	// the result. Returns a *domain.NotFoundError if the todo does not exist.
	Update(ctx context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error)

	// Delete removes a todo and returns it as it was before removal.
	// Returns a *domain.NotFoundError if the todo does not exist.
	Delete(ctx context.Context, id int64) (*todo.Todo, error)
}
