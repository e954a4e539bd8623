// Package fanout runs a function over a slice with bounded concurrency and
// returns the results in input order. The health registry uses it to run
// readiness checks in parallel.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines at once
// (values below 1 are treated as 1) and blocks until all calls return.
//
// Items still waiting for a worker when ctx ends are not run and get
// ctx.Err(). A panic in fn is recovered and reported as that item's error.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, item, fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
