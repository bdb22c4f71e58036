package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// StreamByID returns the latest version of a stream row.
func (r *Repository) StreamByID(ctx context.Context, id uint32) (model.Stream, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stream_by_id", err, start)
	}()

	const query = `
SELECT
	id,
	sender,
	recipient,
	token,
	total_amount,
	claimed_amount,
	start_time,
	end_time,
	last_claim_time,
	status,
	updated_at
FROM streams FINAL
WHERE id = ?`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.Stream{}, false, fmt.Errorf("query stream: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Stream{}, false, fmt.Errorf("iterate stream: %w", err)
		}
		return model.Stream{}, false, nil
	}

	var (
		stream            model.Stream
		sender, recipient string
		token, status     string
		total, claimed    big.Int
	)
	if err = rows.Scan(
		&stream.ID,
		&sender,
		&recipient,
		&token,
		&total,
		&claimed,
		&stream.StartTime,
		&stream.EndTime,
		&stream.LastClaimTime,
		&status,
		&stream.UpdatedAt,
	); err != nil {
		return model.Stream{}, false, fmt.Errorf("scan stream: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Stream{}, false, fmt.Errorf("iterate stream: %w", err)
	}

	stream.Sender = model.Account(sender)
	stream.Recipient = model.Account(recipient)
	stream.Token = model.Token(token)
	stream.TotalAmount = &total
	stream.ClaimedAmount = &claimed
	stream.Status = model.StreamStatus(status)

	return stream, true, nil
}
