package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertWithdrawals stores withdrawal request rows in ClickHouse.
func (r *Repository) InsertWithdrawals(ctx context.Context, requests []model.WithdrawalRequest) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_withdrawals", err, start)
	}()

	err = r.insertWithdrawals(ctx, requests)
	return err
}

// ReplaceWithdrawal stores a new version of a withdrawal request row.
func (r *Repository) ReplaceWithdrawal(ctx context.Context, request model.WithdrawalRequest) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_withdrawal", err, start)
	}()

	err = r.insertWithdrawals(ctx, []model.WithdrawalRequest{request})
	return err
}

func (r *Repository) insertWithdrawals(ctx context.Context, requests []model.WithdrawalRequest) error {
	if len(requests) == 0 {
		return nil
	}

	const query = `
INSERT INTO withdrawal_requests (
	id,
	proposer,
	token,
	recipient,
	amount,
	memo,
	approvals,
	status,
	created_at,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare withdrawals batch: %w", err)
	}

	for _, request := range requests {
		if err := batch.Append(
			request.ID,
			string(request.Proposer),
			string(request.Token),
			string(request.Recipient),
			request.Amount,
			request.Memo,
			toStrings(request.Approvals),
			string(request.Status),
			request.CreatedAt,
			request.UpdatedAt,
		); err != nil {
			return fmt.Errorf("append withdrawal: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert withdrawals: %w", err)
	}
	return nil
}
