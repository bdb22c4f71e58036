package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// TokenBalance folds the escrow ledger into the current balance of one
// account for one token: inflows minus outflows.
func (r *Repository) TokenBalance(ctx context.Context, token model.Token, account model.Account) (*big.Int, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("token_balance", err, start)
	}()

	const query = `
SELECT sum(multiIf(to_account = ?, amount, toInt128(-1) * amount)) AS balance
FROM transfers
WHERE token = ? AND (to_account = ? OR from_account = ?)`

	rows, err := r.conn.Query(ctx, query, account, token, account, account)
	if err != nil {
		return nil, fmt.Errorf("query token balance: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate token balance: %w", err)
		}
		return big.NewInt(0), nil
	}

	var balance big.Int
	if err = rows.Scan(&balance); err != nil {
		return nil, fmt.Errorf("scan token balance: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate token balance: %w", err)
	}

	return &balance, nil
}
