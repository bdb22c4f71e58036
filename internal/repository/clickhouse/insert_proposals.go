package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

// InsertProposals stores proposal rows in ClickHouse. Vote records are
// stored as parallel arrays alongside the tallies.
func (r *Repository) InsertProposals(ctx context.Context, proposals []model.Proposal) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_proposals", err, start)
	}()

	err = r.insertProposals(ctx, proposals)
	return err
}

// ReplaceProposal stores a new version of a proposal row.
func (r *Repository) ReplaceProposal(ctx context.Context, proposal model.Proposal) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("replace_proposal", err, start)
	}()

	err = r.insertProposals(ctx, []model.Proposal{proposal})
	return err
}

func (r *Repository) insertProposals(ctx context.Context, proposals []model.Proposal) error {
	if len(proposals) == 0 {
		return nil
	}

	const query = `
INSERT INTO proposals (
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare proposals batch: %w", err)
	}

	for _, proposal := range proposals {
		voters, choices, times := splitVotes(proposal.Votes)
		if err := batch.Append(
			proposal.ID,
			string(proposal.Proposer),
			proposal.Title,
			string(proposal.Token),
			proposal.Amount,
			string(proposal.Recipient),
			proposal.YesVotes,
			proposal.NoVotes,
			proposal.AbstainVotes,
			voters,
			choices,
			times,
			string(proposal.Status),
			proposal.StartTime,
			proposal.EndTime,
			proposal.UpdatedAt,
		); err != nil {
			return fmt.Errorf("append proposal: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert proposals: %w", err)
	}
	return nil
}

func splitVotes(votes []model.VoteRecord) ([]string, []string, []uint64) {
	voters := make([]string, len(votes))
	choices := make([]string, len(votes))
	times := make([]uint64, len(votes))
	for i, vote := range votes {
		voters[i] = string(vote.Voter)
		choices[i] = string(vote.Choice)
		times[i] = vote.Timestamp
	}
	return voters, choices, times
}

func joinVotes(voters, choices []string, times []uint64) []model.VoteRecord {
	if len(voters) == 0 {
		return nil
	}
	votes := make([]model.VoteRecord, len(voters))
	for i := range voters {
		votes[i] = model.VoteRecord{
			Voter:     model.Account(voters[i]),
			Choice:    model.VoteChoice(choices[i]),
			Timestamp: times[i],
		}
	}
	return votes
}
