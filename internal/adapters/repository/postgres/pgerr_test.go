package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		id     int64
		target error
	}{
		{name: "no rows is not found", err: pgx.ErrNoRows, id: 7, target: domain.ErrNotFound},
		{name: "wrapped no rows is not found", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), id: 7, target: domain.ErrNotFound},
		{name: "check violation is validation", err: &pgconn.PgError{Code: CheckViolationCode}, target: domain.ErrValidation},
		{name: "not null violation is validation", err: &pgconn.PgError{Code: NotNullViolationCode}, target: domain.ErrValidation},
		{name: "unique violation is conflict", err: &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "todos_pkey"}, target: domain.ErrConflict},
		{name: "other errors are wrapped", err: boom, target: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := translate(tt.err, "op", tt.id)
			if !errors.Is(got, tt.target) {
				t.Errorf("translate() = %v, want errors.Is %v", got, tt.target)
			}
		})
	}
}

func TestTranslate_NotFoundMessage(t *testing.T) {
	t.Parallel()

	got := translate(pgx.ErrNoRows, "finding todo", 42)
	if want := "Todo with id 42 not found"; got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}

func TestAsPgError(t *testing.T) {
	t.Parallel()

	pe := &pgconn.PgError{Code: UniqueViolationCode}
	got, ok := AsPgError(fmt.Errorf("insert: %w", pe))
	if !ok || got != pe {
		t.Errorf("AsPgError(wrapped) = %v, %v; want original, true", got, ok)
	}
	if _, ok := AsPgError(errors.New("plain")); ok {
		t.Error("AsPgError(plain) ok = true, want false")
	}
}
