package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxStreamID returns the highest stored stream id. The second return is
// false when no streams exist yet.
func (r *Repository) MaxStreamID(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_stream_id", err, start)
	}()

	const query = `
SELECT max(id) AS max_id, toUInt64(count()) AS total
FROM streams`

	id, total, err := r.maxID(ctx, query)
	return id, total > 0, err
}

func (r *Repository) maxID(ctx context.Context, query string) (uint32, uint64, error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, 0, fmt.Errorf("query max id: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		return 0, 0, fmt.Errorf("max id not found")
	}

	var (
		id    uint32
		total uint64
	)
	if err := rows.Scan(&id, &total); err != nil {
		return 0, 0, fmt.Errorf("scan max id: %w", err)
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("iterate max id: %w", err)
	}
	return id, total, nil
}
