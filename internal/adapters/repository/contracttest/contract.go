// Package contracttest holds the behavioural contract every
// ports.TodoRepository implementation must satisfy. Adapter packages run it
// from their own tests against a fresh store.
package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain"
	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

// Factory returns an empty repository. It is called once per subtest.
type Factory func(t *testing.T) ports.TodoRepository

// missingID is never assigned by a fresh store within a subtest.
const missingID int64 = 999_999

// RunTodoRepository exercises repo CRUD semantics through newRepo.
func RunTodoRepository(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("create assigns distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "buy milk"})
		require.NoError(t, err)
		b, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "walk dog", Completed: true})
		require.NoError(t, err)

		assert.Positive(t, a.ID)
		assert.Greater(t, b.ID, a.ID)
		assert.Equal(t, "buy milk", a.Text)
		assert.False(t, a.Completed)
		assert.True(t, b.Completed)
	})

	t.Run("find returns stored todo", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "read book"})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *got)
	})

	t.Run("list orders by id and applies filter", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, dto := range []todo.CreateTodoDTO{
			{Text: "one"},
			{Text: "two", Completed: true},
			{Text: "three"},
		} {
			_, err := repo.Create(ctx, dto)
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, todo.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"one", "two", "three"}, texts(all))

		done := true
		completed, err := repo.List(ctx, todo.Filter{Completed: &done})
		require.NoError(t, err)
		assert.Equal(t, []string{"two"}, texts(completed))

		open := false
		pending, err := repo.List(ctx, todo.Filter{Completed: &open})
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "three"}, texts(pending))
	})

	t.Run("list on empty store is empty", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.List(context.Background(), todo.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("update applies only set fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "draft"})
		require.NoError(t, err)

		done := true
		updated, err := repo.Update(ctx, todo.UpdateTodoDTO{ID: created.ID, Completed: &done})
		require.NoError(t, err)
		assert.Equal(t, "draft", updated.Text)
		assert.True(t, updated.Completed)

		text := "final"
		updated, err = repo.Update(ctx, todo.UpdateTodoDTO{ID: created.ID, Text: &text})
		require.NoError(t, err)
		assert.Equal(t, "final", updated.Text)
		assert.True(t, updated.Completed)

		got, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *got)
	})

	t.Run("delete returns removed todo", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "temp"})
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *deleted)

		_, err = repo.FindByID(ctx, created.ID)
		requireNotFound(t, err, created.ID)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "a"})
		require.NoError(t, err)
		_, err = repo.Delete(ctx, first.ID)
		require.NoError(t, err)

		second, err := repo.Create(ctx, todo.CreateTodoDTO{Text: "b"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.FindByID(ctx, missingID)
		requireNotFound(t, err, missingID)

		text := "x"
		_, err = repo.Update(ctx, todo.UpdateTodoDTO{ID: missingID, Text: &text})
		requireNotFound(t, err, missingID)

		_, err = repo.Delete(ctx, missingID)
		requireNotFound(t, err, missingID)
	})
}

func requireNotFound(t *testing.T, err error, id int64) {
	t.Helper()

	require.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf), "want *domain.NotFoundError, got %T", err)
	assert.Equal(t, todo.EntityName, nf.Entity)
	assert.Equal(t, id, nf.ID)
}

func texts(todos []todo.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.Text)
	}
	return out
}
