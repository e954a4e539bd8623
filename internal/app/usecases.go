// Package app provides the application use-cases. Each use-case wraps exactly
// one repository call behind an Execute method so cross-cutting concerns can be
// added later without touching the HTTP controller. Use-cases are cheap to
// construct and are built fresh for every request.
package app

import (
	"context"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

// GetTodos lists todos.
type GetTodos struct {
	repo ports.TodoRepository
}

// NewGetTodos creates a GetTodos use-case.
func NewGetTodos(repo ports.TodoRepository) *GetTodos {
	return &GetTodos{repo: repo}
}

// Execute returns the todos matching filter.
func (uc *GetTodos) Execute(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	return uc.repo.List(ctx, filter)
}

// GetTodo fetches a single todo.
type GetTodo struct {
	repo ports.TodoRepository
}

// NewGetTodo creates a GetTodo use-case.
func NewGetTodo(repo ports.TodoRepository) *GetTodo {
	return &GetTodo{repo: repo}
}

// Execute returns the todo with the given ID.
func (uc *GetTodo) Execute(ctx context.Context, id int64) (*todo.Todo, error) {
	return uc.repo.FindByID(ctx, id)
}

// CreateTodo stores a new todo.
type CreateTodo struct {
	repo ports.TodoRepository
}

// NewCreateTodo creates a CreateTodo use-case.
func NewCreateTodo(repo ports.TodoRepository) *CreateTodo {
	return &CreateTodo{repo: repo}
}

// Execute creates the todo described by dto.
func (uc *CreateTodo) Execute(ctx context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	return uc.repo.Create(ctx, dto)
}

// UpdateTodo modifies an existing todo.
type UpdateTodo struct {
	repo ports.TodoRepository
}

// NewUpdateTodo creates an UpdateTodo use-case.
func NewUpdateTodo(repo ports.TodoRepository) *UpdateTodo {
	return &UpdateTodo{repo: repo}
}

// Execute applies dto to the todo identified by dto.ID.
func (uc *UpdateTodo) Execute(ctx context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error) {
	return uc.repo.Update(ctx, dto)
}

// DeleteTodo removes a todo.
type DeleteTodo struct {
	repo ports.TodoRepository
}

// NewDeleteTodo creates a DeleteTodo use-case.
func NewDeleteTodo(repo ports.TodoRepository) *DeleteTodo {
	return &DeleteTodo{repo: repo}
}

// Execute deletes the todo with the given ID and returns it.
func (uc *DeleteTodo) Execute(ctx context.Context, id int64) (*todo.Todo, error) {
	return uc.repo.Delete(ctx, id)
}
