package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// TreasuryState returns the latest signer-set configuration, if any.
func (r *Repository) TreasuryState(ctx context.Context) (model.TreasuryState, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("treasury_state", err, start)
	}()

	const query = `
SELECT
	admin,
	signers,
	threshold,
	updated_at
FROM treasury_state FINAL
WHERE name = 'treasury'`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.TreasuryState{}, false, fmt.Errorf("query treasury state: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.TreasuryState{}, false, fmt.Errorf("iterate treasury state: %w", err)
		}
		return model.TreasuryState{}, false, nil
	}

	var (
		state   model.TreasuryState
		admin   string
		signers []string
	)
	if err = rows.Scan(&admin, &signers, &state.Threshold, &state.UpdatedAt); err != nil {
		return model.TreasuryState{}, false, fmt.Errorf("scan treasury state: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.TreasuryState{}, false, fmt.Errorf("iterate treasury state: %w", err)
	}

	state.Admin = model.Account(admin)
	state.Signers = toAccounts(signers)

	return state, true, nil
}

// ReplaceTreasuryState stores a new version of the signer-set row.
func (r *Repository) ReplaceTreasuryState(ctx context.Context, state model.TreasuryState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_treasury_state", err, start)
	}()

	const query = `
INSERT INTO treasury_state (
	name,
	admin,
	signers,
	threshold,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare treasury state batch: %w", err)
	}
	if err = batch.Append(
		"treasury",
		string(state.Admin),
		toStrings(state.Signers),
		state.Threshold,
		state.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append treasury state: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert treasury state: %w", err)
	}
	return nil
}
