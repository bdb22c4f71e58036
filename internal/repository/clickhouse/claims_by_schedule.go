package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// ClaimsBySchedule returns the claim history of one schedule in claim order.
func (r *Repository) ClaimsBySchedule(ctx context.Context, kind model.ScheduleKind, id uint32) ([]model.Claim, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claims_by_schedule", err, start)
	}()

	const query = `
SELECT
	kind,
	schedule_id,
	recipient,
	amount,
	claimed_at
FROM claims
WHERE kind = ? AND schedule_id = ?
ORDER BY claimed_at`

	rows, err := r.conn.Query(ctx, query, kind, id)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var claims []model.Claim
	for rows.Next() {
		var (
			claim     model.Claim
			kindValue string
			recipient string
			amount    big.Int
		)
		if err = rows.Scan(
			&kindValue,
			&claim.ScheduleID,
			&recipient,
			&amount,
			&claim.ClaimedAt,
		); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claim.Kind = model.ScheduleKind(kindValue)
		claim.Recipient = model.Account(recipient)
		claim.Amount = &amount
		claims = append(claims, claim)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claims: %w", err)
	}

	return claims, nil
}
