package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// WithdrawalByID returns the latest version of a withdrawal request row.
func (r *Repository) WithdrawalByID(ctx context.Context, id uint32) (model.WithdrawalRequest, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("withdrawal_by_id", err, start)
	}()

	const query = `
SELECT
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
FROM withdrawal_requests FINAL
WHERE id = ?`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.WithdrawalRequest{}, false, fmt.Errorf("query withdrawal: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.WithdrawalRequest{}, false, fmt.Errorf("iterate withdrawal: %w", err)
		}
		return model.WithdrawalRequest{}, false, nil
	}

	var (
		request             model.WithdrawalRequest
		proposer, recipient string
		token, status       string
		amount              big.Int
		approvals           []string
	)
	if err = rows.Scan(
		&request.ID,
		&proposer,
		&token,
		&recipient,
		&amount,
		&request.Memo,
		&approvals,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return model.WithdrawalRequest{}, false, fmt.Errorf("scan withdrawal: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.WithdrawalRequest{}, false, fmt.Errorf("iterate withdrawal: %w", err)
	}

	request.Proposer = model.Account(proposer)
	request.Token = model.Token(token)
	request.Recipient = model.Account(recipient)
	request.Amount = &amount
	request.Approvals = toAccounts(approvals)
	request.Status = model.WithdrawalStatus(status)

	return request, true, nil
}
