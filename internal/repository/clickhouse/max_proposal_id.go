package clickhouse

import (
	"context"
	"time"
)

// MaxProposalID returns the highest stored proposal id. The second return
// is false when no proposals exist yet.
func (r *Repository) MaxProposalID(ctx context.Context) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_proposal_id", err, start)
	}()

	const query = `
SELECT max(id) AS max_id, toUInt64(count()) AS total
FROM proposals`

	id, total, err := r.maxID(ctx, query)
	return id, total > 0, err
}
