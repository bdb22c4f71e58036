package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertIndexEntries appends account-to-schedule index rows.
func (r *Repository) InsertIndexEntries(ctx context.Context, entries []model.IndexEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_index_entries", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO schedule_index (
	account,
	role,
	kind,
	schedule_id,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare index entries batch: %w", err)
	}

	for _, entry := range entries {
		if err = batch.Append(
			string(entry.Account),
			string(entry.Role),
			string(entry.Kind),
			entry.ScheduleID,
			entry.CreatedAt,
		); err != nil {
			return fmt.Errorf("append index entry: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert index entries: %w", err)
	}
	return nil
}
