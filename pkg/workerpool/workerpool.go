// Package workerpool fans a slice of work items out over a fixed number
// of goroutines.
package workerpool

import (
	"context"
	"sync"
)

// Process runs fn over every item using the given number of workers.
// The first error cancels the remaining work and is returned; a context
// canceled before or during the run surfaces as the context error.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() { firstErr = err })
		cancel()
	}

	feed := make(chan T)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range feed {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, item); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

	for _, item := range items {
		select {
		case <-ctx.Done():
		case feed <- item:
			continue
		}
		break
	}
	close(feed)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
