// Package todoapi holds the wire shapes of the downstream todo API and the
// translators between them and the domain Todo. The downstream names a
// todo's text "title" and its completion flag "done".
package todoapi

// TodoDTO is a todo as the downstream returns it.
type TodoDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// CreateTodoRequestDTO is the body of POST /api/v1/todos.
type CreateTodoRequestDTO struct {
	Title string `json:"title"`
	Done  bool   `json:"done,omitempty"`
}

// UpdateTodoRequestDTO is the body of PATCH /api/v1/todos/{id}. Nil fields
// are left unchanged downstream.
type UpdateTodoRequestDTO struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// TodoListResponseDTO is the body of GET /api/v1/todos.
type TodoListResponseDTO struct {
	Items []TodoDTO `json:"items"`
	Count int64     `json:"count"`
}
