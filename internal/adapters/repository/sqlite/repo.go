// Package sqlite stores todos in a SQLite database through the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// Name identifies the store in health reports and metrics.
const Name = "sqlite"

const schema = `
	CREATE TABLE IF NOT EXISTS todos (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		text      TEXT    NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0
	);
`

const columns = `id, text, completed`

// Repo implements ports.TodoRepository and ports.HealthChecker on SQLite.
type Repo struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Repo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" databases from
	// splitting across pooled connections.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating sqlite database: %w", err)
	}

	return &Repo{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Repo) Close() error {
	return r.db.Close()
}

// Name implements ports.HealthChecker.
func (r *Repo) Name() string {
	return Name
}

// HealthCheck implements ports.HealthChecker.
func (r *Repo) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repo) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	query := `SELECT ` + columns + ` FROM todos`
	var args []any
	if filter.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, *filter.Completed)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	out := []todo.Todo{}
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	return out, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM todos WHERE id = ?`, id)
	return scanOne(row, id, "finding todo")
}

func (r *Repo) Create(ctx context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (text, completed) VALUES (?, ?) RETURNING `+columns,
		dto.Text, dto.Completed,
	)

	var t todo.Todo
	if err := row.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return &t, nil
}

func (r *Repo) Update(ctx context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE todos
		    SET text = COALESCE(?, text),
		        completed = COALESCE(?, completed)
		  WHERE id = ?
		RETURNING `+columns,
		dto.Text, dto.Completed, dto.ID,
	)
	return scanOne(row, dto.ID, "updating todo")
}

func (r *Repo) Delete(ctx context.Context, id int64) (*todo.Todo, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM todos WHERE id = ? RETURNING `+columns, id)
	return scanOne(row, id, "deleting todo")
}

func scanOne(row *sql.Row, id int64, op string) (*todo.Todo, error) {
	var t todo.Todo
	if err := row.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, todo.NotFound(id)
		}
		return nil, fmt.Errorf("%s %d: %w", op, id, err)
	}
	return &t, nil
}
