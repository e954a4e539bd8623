package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
	// CheckViolationCode indicates a check constraint violation.
	CheckViolationCode = "23514"
	// NotNullViolationCode indicates a NULL written to a NOT NULL column.
	NotNullViolationCode = "23502"
)

// AsPgError extracts the server error from err, if there is one.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// translate maps driver errors onto domain errors. id is the todo the
// operation targeted, or 0 for inserts and lists.
func translate(err error, op string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return todo.NotFound(id)
	}
	if pe, ok := AsPgError(err); ok {
		switch pe.Code {
		case CheckViolationCode, NotNullViolationCode:
			return domain.NewValidationError("text", domain.MsgMustNotEmpty)
		case UniqueViolationCode:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pe.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
