package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// ProposalByID returns the latest version of a proposal row.
func (r *Repository) ProposalByID(ctx context.Context, id uint32) (model.Proposal, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("proposal_by_id", err, start)
	}()

	const query = `
SELECT
	id,
	proposer,
	title,
	token,
	amount,
	recipient,
	yes_votes,
	no_votes,
	abstain_votes,
	voters,
	choices,
	vote_times,
	status,
	start_time,
	end_time,
	updated_at
FROM proposals FINAL
WHERE id = ?`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.Proposal{}, false, fmt.Errorf("query proposal: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Proposal{}, false, fmt.Errorf("iterate proposal: %w", err)
		}
		return model.Proposal{}, false, nil
	}

	var (
		proposal            model.Proposal
		proposer, recipient string
		token, status       string
		amount              big.Int
		voters, choices     []string
		times               []uint64
	)
	if err = rows.Scan(
		&proposal.ID,
		&proposer,
		&proposal.Title,
		&token,
		&amount,
		&recipient,
		&proposal.YesVotes,
		&proposal.NoVotes,
		&proposal.AbstainVotes,
		&voters,
		&choices,
		&times,
		&status,
		&proposal.StartTime,
		&proposal.EndTime,
		&proposal.UpdatedAt,
	); err != nil {
		return model.Proposal{}, false, fmt.Errorf("scan proposal: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Proposal{}, false, fmt.Errorf("iterate proposal: %w", err)
	}

	proposal.Proposer = model.Account(proposer)
	proposal.Token = model.Token(token)
	proposal.Amount = &amount
	proposal.Recipient = model.Account(recipient)
	proposal.Votes = joinVotes(voters, choices, times)
	proposal.Status = model.ProposalStatus(status)

	return proposal, true, nil
}
