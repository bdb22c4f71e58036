package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// ScheduleIDs returns the ids of schedules an account participates in,
// filtered by kind and role, in creation order.
func (r *Repository) ScheduleIDs(ctx context.Context, kind model.ScheduleKind, account model.Account, role model.Role) ([]uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("schedule_ids", err, start)
	}()

	const query = `
SELECT schedule_id
FROM schedule_index
WHERE account = ? AND role = ? AND kind = ?
ORDER BY created_at, schedule_id`

	rows, err := r.conn.Query(ctx, query, account, role, kind)
	if err != nil {
		return nil, fmt.Errorf("query schedule ids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var ids []uint32
	for rows.Next() {
		var id uint32
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan schedule id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule ids: %w", err)
	}

	return ids, nil
}
