// Package clock provides ledger time and time-related helpers.
package clock

import (
	"context"
	"time"
)

// Clock yields the current ledger time as unix seconds. Services take a
// Clock so tests can pin time and accrual results stay deterministic.
type Clock interface {
	Now() uint64
}

// System is a Clock backed by the wall clock.
type System struct{}

func (System) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Fixed is a Clock pinned to a settable instant.
type Fixed struct {
	Time uint64
}

func (f *Fixed) Now() uint64 {
	return f.Time
}

// Advance moves the fixed clock forward by d seconds.
func (f *Fixed) Advance(d uint64) {
	f.Time += d
}

// SleepWithContext waits for the duration or returns early if the context
// is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
