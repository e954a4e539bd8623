package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// Name identifies the store in health reports and metrics.
const Name = "postgres"

const schema = `
	CREATE TABLE IF NOT EXISTS todos (
		id        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		text      TEXT    NOT NULL CHECK (btrim(text) <> ''),
		completed BOOLEAN NOT NULL DEFAULT FALSE
	);
`

const columns = `id, text, completed`

// Repo implements ports.TodoRepository and ports.HealthChecker on PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo wraps an open pool. Call Migrate before first use.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Migrate creates the todos table if it does not exist.
func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrating postgres: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repo) Name() string {
	return Name
}

// HealthCheck implements ports.HealthChecker.
func (r *Repo) HealthCheck(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *Repo) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	query := `SELECT ` + columns + ` FROM todos`
	var args []any
	if filter.Completed != nil {
		query += ` WHERE completed = $1`
		args = append(args, *filter.Completed)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "listing todos", 0)
	}
	out, err := pgx.CollectRows(rows, scanTodo)
	if err != nil {
		return nil, translate(err, "listing todos", 0)
	}
	if out == nil {
		out = []todo.Todo{}
	}
	return out, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+columns+` FROM todos WHERE id = $1`, id)
	return collectOne(rows, "finding todo", id)
}

func (r *Repo) Create(ctx context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	rows, _ := r.pool.Query(ctx,
		`INSERT INTO todos (text, completed) VALUES ($1, $2) RETURNING `+columns,
		dto.Text, dto.Completed,
	)
	return collectOne(rows, "creating todo", 0)
}

func (r *Repo) Update(ctx context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error) {
	rows, _ := r.pool.Query(ctx,
		`UPDATE todos
		    SET text = COALESCE($1, text),
		        completed = COALESCE($2, completed)
		  WHERE id = $3
		RETURNING `+columns,
		dto.Text, dto.Completed, dto.ID,
	)
	return collectOne(rows, "updating todo", dto.ID)
}

func (r *Repo) Delete(ctx context.Context, id int64) (*todo.Todo, error) {
	rows, _ := r.pool.Query(ctx, `DELETE FROM todos WHERE id = $1 RETURNING `+columns, id)
	return collectOne(rows, "deleting todo", id)
}

// collectOne reads exactly one row. Query errors surface through rows, so
// callers may ignore the error returned by Query.
func collectOne(rows pgx.Rows, op string, id int64) (*todo.Todo, error) {
	t, err := pgx.CollectExactlyOneRow(rows, scanTodo)
	if err != nil {
		return nil, translate(err, op, id)
	}
	return &t, nil
}

func scanTodo(row pgx.CollectableRow) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Completed)
	return t, err
}
