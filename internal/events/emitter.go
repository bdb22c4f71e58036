// Package events publishes domain events to the append-only event log.
// Events are buffered and flushed in batches; a lost event never rolls
// back the operation that produced it.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/model"
	"github.com/lumendao/treasury-backend/pkg/batcher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Store is the event persistence the emitter flushes into.
type Store interface {
	InsertEvents(ctx context.Context, events []model.Event) error
}

// Config bounds the emitter's buffering.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Emitter buffers domain events and writes them out in batches.
type Emitter struct {
	batcher *batcher.Batcher[model.Event]
}

// NewEmitter creates an Emitter flushing into the store.
func NewEmitter(logger *zap.Logger, store Store, cfg Config) *Emitter {
	return &Emitter{
		batcher: batcher.New(logger, store.InsertEvents, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
	}
}

// Start begins the background flushing loop.
func (e *Emitter) Start(ctx context.Context) {
	e.batcher.Start(ctx)
}

// Stop flushes buffered events and stops the loop.
func (e *Emitter) Stop() {
	e.batcher.Stop()
}

// Emit queues one event. The ID and timestamp are filled in when the
// caller leaves them zero.
func (e *Emitter) Emit(ctx context.Context, event model.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	return e.batcher.Add(ctx, event)
}
