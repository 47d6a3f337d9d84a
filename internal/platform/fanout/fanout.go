// Package fanout runs a function over a slice of items on a bounded number of
// goroutines and returns the results in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight.
// Results line up with items by index. Values of maxWorkers below one are
// treated as one.
//
// Items still waiting for a worker when ctx is done are not processed; their
// Result carries ctx.Err(). Calls already running are left to fn to cancel.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}
