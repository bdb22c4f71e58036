package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertEvents appends domain event rows.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO events (
	id,
	topic,
	subject,
	payload,
	at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.ID,
			event.Topic,
			string(event.Subject),
			event.Payload,
			event.At,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
