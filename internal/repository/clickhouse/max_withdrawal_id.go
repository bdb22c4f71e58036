package clickhouse

import (
	"context"
	"time"
)

// MaxWithdrawalID returns the highest stored withdrawal request id. The
// second return is false when no requests exist yet.
func (r *Repository) MaxWithdrawalID(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_withdrawal_id", err, start)
	}()

	const query = `
SELECT max(id) AS max_id, toUInt64(count()) AS total
FROM withdrawal_requests`

	id, total, err := r.maxID(ctx, query)
	return id, total > 0, err
}
