// Package batcher accumulates items and writes them out in batches,
// either when the buffer fills or when the flush interval elapses.
package batcher

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Batcher collects items of one type and hands them to the sink in
// batches. Flushes are rate limited; a failed flush is logged and the
// batch dropped, never retried.
type Batcher[T any] struct {
	sink     func(context.Context, []T) error
	intake   chan T
	size     int
	interval time.Duration
	rl       ratelimit.Limiter
	logger   *zap.Logger

	stop chan struct{}
	done chan struct{}
}

// New constructs a batcher flushing into sink.
func New[T any](logger *zap.Logger, sink func(context.Context, []T) error, size int, interval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		sink:     sink,
		intake:   make(chan T, size*2),
		size:     size,
		interval: interval,
		rl:       ratelimit.New(rps),
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.run(ctx)
}

// Stop drains the intake queue, flushes what remains and stops the
// loop. It returns once the final flush has completed.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	<-b.done
}

// Add queues one item. It fails once the batcher is stopped or the
// context is done.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.intake <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.size)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		b.rl.Take()
		if err := b.sink(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			// Items queued before Stop still go out.
			for {
				select {
				case item := <-b.intake:
					batch = append(batch, item)
					if len(batch) >= b.size {
						flush()
					}
					continue
				default:
				}
				break
			}
			flush()
			return

		case item := <-b.intake:
			batch = append(batch, item)
			if len(batch) >= b.size {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
