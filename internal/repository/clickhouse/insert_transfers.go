package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertTransfers appends escrow ledger rows.
func (r *Repository) InsertTransfers(ctx context.Context, transfers []model.Transfer) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transfers", err, start)
	}()

	if len(transfers) == 0 {
		return nil
	}

	const query = `
INSERT INTO transfers (
	id,
	kind,
	token,
	from_account,
	to_account,
	amount,
	reference,
	schedule_id,
	at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transfers batch: %w", err)
	}

	for _, transfer := range transfers {
		if err = batch.Append(
			transfer.ID,
			string(transfer.Kind),
			string(transfer.Token),
			string(transfer.From),
			string(transfer.To),
			transfer.Amount,
			string(transfer.Reference),
			transfer.ScheduleID,
			transfer.At,
		); err != nil {
			return fmt.Errorf("append transfer: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transfers: %w", err)
	}
	return nil
}
