package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertStreams stores stream rows in ClickHouse.
func (r *Repository) InsertStreams(ctx context.Context, streams []model.Stream) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_streams", err, start)
	}()

	err = r.insertStreams(ctx, streams)
	return err
}

// ReplaceStream stores a new version of a stream row. The table keeps the
// row with the latest updated_at per id.
func (r *Repository) ReplaceStream(ctx context.Context, stream model.Stream) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_stream", err, start)
	}()

	err = r.insertStreams(ctx, []model.Stream{stream})
	return err
}

func (r *Repository) insertStreams(ctx context.Context, streams []model.Stream) error {
	if len(streams) == 0 {
		return nil
	}

	const query = `
INSERT INTO streams (
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare streams batch: %w", err)
	}

	for _, stream := range streams {
		if err := batch.Append(
			stream.ID,
			string(stream.Sender),
			string(stream.Recipient),
			string(stream.Token),
			stream.TotalAmount,
			stream.ClaimedAmount,
			stream.StartTime,
			stream.EndTime,
			stream.LastClaimTime,
			string(stream.Status),
			stream.UpdatedAt,
		); err != nil {
			return fmt.Errorf("append stream: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert streams: %w", err)
	}
	return nil
}
