package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertClaims appends claim history rows.
func (r *Repository) InsertClaims(ctx context.Context, claims []model.Claim) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_claims", err, start)
	}()

	if len(claims) == 0 {
		return nil
	}

	const query = `
INSERT INTO claims (
	kind,
	schedule_id,
	recipient,
	amount,
	claimed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare claims batch: %w", err)
	}

	for _, claim := range claims {
		if err = batch.Append(
			string(claim.Kind),
			claim.ScheduleID,
			string(claim.Recipient),
			claim.Amount,
			claim.ClaimedAt,
		); err != nil {
			return fmt.Errorf("append claim: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert claims: %w", err)
	}
	return nil
}
