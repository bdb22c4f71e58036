package clickhouse

import (
	"context"
	"time"
)

// MaxVestingScheduleID returns the highest stored vesting schedule id. The
// second return is false when no schedules exist yet.
func (r *Repository) MaxVestingScheduleID(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_vesting_schedule_id", err, start)
	}()

	const query = `
SELECT max(id) AS max_id, toUInt64(count()) AS total
FROM vesting_schedules`

	id, total, err := r.maxID(ctx, query)
	return id, total > 0, err
}
