// Package dto holds the JSON shapes exchanged with HTTP clients and the
// error-to-status mapping for the inbound adapter.
package dto

import "github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"

// TodoResponse is the wire form of a todo.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo to its wire form.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts todos to a JSON array. A nil or empty slice is
// rendered as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}
