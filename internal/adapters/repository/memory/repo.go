// Package memory is an in-process todo store. Data lives only as long as
// the process.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-spa-service/internal/domain/todo"
)

// Repo is an in-memory implementation of ports.TodoRepository. IDs are
// assigned sequentially from 1 and never reused. It is safe for concurrent
// use.
type Repo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]todo.Todo
}

// NewRepo returns an empty Repo.
func NewRepo() *Repo {
	return &Repo{
		nextID: 1,
		byID:   make(map[int64]todo.Todo),
	}
}

// List returns the todos matching filter ordered by ID.
func (r *Repo) List(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]todo.Todo, 0, len(r.byID))
	for _, t := range r.byID {
		if filter.Matches(&t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b todo.Todo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *Repo) FindByID(_ context.Context, id int64) (*todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, todo.NotFound(id)
	}
	return &t, nil
}

// Create stores a new todo. Blank text is rejected here as well as in the
// DTO factories, matching the CHECK constraint of the SQL stores.
func (r *Repo) Create(_ context.Context, dto todo.CreateTodoDTO) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := todo.Todo{ID: r.nextID, Text: dto.Text, Completed: dto.Completed}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	r.nextID++
	r.byID[t.ID] = t
	return &t, nil
}

func (r *Repo) Update(_ context.Context, dto todo.UpdateTodoDTO) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[dto.ID]
	if !ok {
		return nil, todo.NotFound(dto.ID)
	}
	t.Apply(dto)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	r.byID[t.ID] = t
	return &t, nil
}

func (r *Repo) Delete(_ context.Context, id int64) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, todo.NotFound(id)
	}
	delete(r.byID, id)
	return &t, nil
}
