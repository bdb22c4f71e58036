package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// GovernanceState returns the latest DAO configuration, if any.
func (r *Repository) GovernanceState(ctx context.Context) (model.GovernanceState, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("governance_state", err, start)
	}()

	const query = `
SELECT
	admin,
	members,
	quorum_percentage,
	voting_duration,
	grace_period,
	updated_at
FROM governance_state FINAL
WHERE name = 'governance'`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.GovernanceState{}, false, fmt.Errorf("query governance state: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.GovernanceState{}, false, fmt.Errorf("iterate governance state: %w", err)
		}
		return model.GovernanceState{}, false, nil
	}

	var (
		state   model.GovernanceState
		admin   string
		members []string
	)
	if err = rows.Scan(
		&admin,
		&members,
		&state.QuorumPercentage,
		&state.VotingDuration,
		&state.GracePeriod,
		&state.UpdatedAt,
	); err != nil {
		return model.GovernanceState{}, false, fmt.Errorf("scan governance state: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.GovernanceState{}, false, fmt.Errorf("iterate governance state: %w", err)
	}

	state.Admin = model.Account(admin)
	state.Members = toAccounts(members)

	return state, true, nil
}

// ReplaceGovernanceState stores a new version of the DAO configuration row.
func (r *Repository) ReplaceGovernanceState(ctx context.Context, state model.GovernanceState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_governance_state", err, start)
	}()

	const query = `
INSERT INTO governance_state (
	name,
	admin,
	members,
	quorum_percentage,
	voting_duration,
	grace_period,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare governance state batch: %w", err)
	}
	if err = batch.Append(
		"governance",
		string(state.Admin),
		toStrings(state.Members),
		state.QuorumPercentage,
		state.VotingDuration,
		state.GracePeriod,
		state.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append governance state: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert governance state: %w", err)
	}
	return nil
}
