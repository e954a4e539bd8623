// Package todo holds the Todo entity and the validated input shapes used to
// create and update it.
package todo

import (
	"strings"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

// EntityName is used in not-found messages ("Todo with id 7 not found").
const EntityName = "Todo"

// Todo is a single task item with a completion flag.
type Todo struct {
	ID        int64
	Text      string
	Completed bool
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return domain.NewValidationError("text", domain.MsgRequired)
	}
	return nil
}

// Apply merges the optional fields of an update into the todo.
func (t *Todo) Apply(dto UpdateTodoDTO) {
	if dto.Text != nil {
		t.Text = *dto.Text
	}
	if dto.Completed != nil {
		t.Completed = *dto.Completed
	}
}

// NotFound returns the not-found error for a todo ID.
func NotFound(id int64) error {
	return domain.NewNotFoundError(EntityName, id)
}
