package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/model"
)

// GovernanceService owns the DAO budget-proposal workflow: member voting
// with quorum and majority rules, a time-bound voting window, and a grace
// period after which unfinalized proposals expire.
type GovernanceService struct {
	repo   GovernanceRepository
	auth   Authorizer
	tokens TokenMover
	events Emitter
	clock  clock.Clock
	logger *zap.Logger

	mu     sync.Mutex
	nextID uint32
}

// NewGovernanceService builds the governance service and seeds the
// proposal id counter from storage.
func NewGovernanceService(
	ctx context.Context,
	repo GovernanceRepository,
	auth Authorizer,
	tokens TokenMover,
	events Emitter,
	clk clock.Clock,
	logger *zap.Logger,
) (*GovernanceService, error) {
	maxID, exists, err := repo.MaxProposalID(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed proposal id counter: %w", err)
	}

	next := uint32(0)
	if exists {
		next = maxID + 1
	}

	return &GovernanceService{
		repo:   repo,
		auth:   auth,
		tokens: tokens,
		events: events,
		clock:  clk,
		logger: logger,
		nextID: next,
	}, nil
}

// Initialize registers the admin, member set and voting rules. It may be
// called once.
func (s *GovernanceService) Initialize(
	ctx context.Context,
	admin model.Account,
	members []model.Account,
	quorumPercentage uint32,
	votingDuration uint64,
	gracePeriod uint64,
) error {
	if _, exists, err := s.repo.GovernanceState(ctx); err != nil {
		return fmt.Errorf("load governance state: %w", err)
	} else if exists {
		return ErrAlreadyInitialized
	}
	if quorumPercentage > 100 {
		return ErrInvalidAmount
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return err
	}

	if err := s.repo.ReplaceGovernanceState(ctx, model.GovernanceState{
		Admin:            admin,
		Members:          members,
		QuorumPercentage: quorumPercentage,
		VotingDuration:   votingDuration,
		GracePeriod:      gracePeriod,
		UpdatedAt:        time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("store governance state: %w", err)
	}

	s.emit(ctx, "governance.init", admin, fmt.Sprintf("members=%d quorum=%d", len(members), quorumPercentage))
	return nil
}

// CreateProposal opens a budget proposal for voting. Members only.
func (s *GovernanceService) CreateProposal(
	ctx context.Context,
	proposer model.Account,
	title string,
	token model.Token,
	amount *big.Int,
	recipient model.Account,
) (uint32, error) {
	state, err := s.state(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.auth.Require(ctx, proposer); err != nil {
		return 0, err
	}
	if !containsAccount(state.Members, proposer) {
		return 0, ErrNotAMember
	}
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	id := s.nextID
	proposal := model.Proposal{
		ID:        id,
		Proposer:  proposer,
		Title:     title,
		Token:     token,
		Amount:    new(big.Int).Set(amount),
		Recipient: recipient,
		Votes:     []model.VoteRecord{},
		Status:    model.ProposalActive,
		StartTime: now,
		EndTime:   now + state.VotingDuration,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertProposals(ctx, []model.Proposal{proposal}); err != nil {
		return 0, fmt.Errorf("insert proposal: %w", err)
	}
	s.nextID++

	s.emit(ctx, "governance.proposal_create", proposer, fmt.Sprintf("id=%d amount=%s", id, amount))
	return id, nil
}

// Vote casts a member's vote on an active proposal inside its voting
// window. Each member votes at most once.
func (s *GovernanceService) Vote(ctx context.Context, voter model.Account, id uint32, choice model.VoteChoice) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	if err := s.auth.Require(ctx, voter); err != nil {
		return err
	}
	if !containsAccount(state.Members, voter) {
		return ErrNotAMember
	}

	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return ErrProposalNotFound
	}
	if proposal.Status != model.ProposalActive {
		return ErrVotingNotActive
	}

	now := s.clock.Now()
	if now > proposal.EndTime {
		return ErrVotingPeriodExpired
	}

	for _, record := range proposal.Votes {
		if record.Voter == voter {
			return ErrAlreadyVoted
		}
	}

	switch choice {
	case model.VoteYes:
		proposal.YesVotes++
	case model.VoteNo:
		proposal.NoVotes++
	case model.VoteAbstain:
		proposal.AbstainVotes++
	default:
		return ErrInvalidVote
	}

	proposal.Votes = append(proposal.Votes, model.VoteRecord{
		Voter:     voter,
		Choice:    choice,
		Timestamp: now,
	})
	proposal.UpdatedAt = time.Now().UTC()

	if err := s.repo.ReplaceProposal(ctx, proposal); err != nil {
		return fmt.Errorf("replace proposal %d: %w", id, err)
	}

	s.emit(ctx, "governance.vote", voter, fmt.Sprintf("id=%d choice=%s", id, choice))
	return nil
}

// Finalize resolves a proposal after its voting window: below quorum it
// is Rejected, otherwise a yes-majority makes it Approved.
func (s *GovernanceService) Finalize(ctx context.Context, caller model.Account, id uint32) (model.ProposalStatus, error) {
	state, err := s.state(ctx)
	if err != nil {
		return "", err
	}
	if err := s.auth.Require(ctx, caller); err != nil {
		return "", err
	}

	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return "", ErrProposalNotFound
	}
	if proposal.Status != model.ProposalActive {
		return "", ErrVotingNotActive
	}
	if s.clock.Now() <= proposal.EndTime {
		return "", ErrProposalStillActive
	}

	totalVotes := proposal.YesVotes + proposal.NoVotes + proposal.AbstainVotes
	quorum := (uint32(len(state.Members)) * state.QuorumPercentage) / 100

	switch {
	case totalVotes < quorum:
		proposal.Status = model.ProposalRejected
	case proposal.YesVotes > proposal.NoVotes:
		proposal.Status = model.ProposalApproved
	default:
		proposal.Status = model.ProposalRejected
	}
	proposal.UpdatedAt = time.Now().UTC()

	if err := s.repo.ReplaceProposal(ctx, proposal); err != nil {
		return "", fmt.Errorf("replace proposal %d: %w", id, err)
	}

	s.emit(ctx, "governance.finalize", caller, fmt.Sprintf("id=%d status=%s", id, proposal.Status))
	return proposal.Status, nil
}

// Execute disburses an approved proposal's funds. Admin only.
func (s *GovernanceService) Execute(ctx context.Context, admin model.Account, id uint32) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	if state.Admin != admin {
		return ErrUnauthorized
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return err
	}

	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return ErrProposalNotFound
	}
	if proposal.Status != model.ProposalApproved {
		return ErrProposalNotApproved
	}

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:     uuid.NewString(),
		Kind:   model.TransferOutflow,
		Token:  proposal.Token,
		From:   model.EscrowAccount,
		To:     proposal.Recipient,
		Amount: proposal.Amount,
		At:     s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("disburse proposal %d: %w", id, err)
	}

	proposal.Status = model.ProposalExecuted
	proposal.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceProposal(ctx, proposal); err != nil {
		return fmt.Errorf("replace proposal %d: %w", id, err)
	}

	s.emit(ctx, "governance.execute", proposal.Recipient, fmt.Sprintf("id=%d amount=%s", id, proposal.Amount))
	return nil
}

// Cancel withdraws an active proposal. Proposer only.
func (s *GovernanceService) Cancel(ctx context.Context, proposer model.Account, id uint32) error {
	if _, err := s.state(ctx); err != nil {
		return err
	}
	if err := s.auth.Require(ctx, proposer); err != nil {
		return err
	}

	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return ErrProposalNotFound
	}
	if proposal.Proposer != proposer {
		return ErrUnauthorized
	}
	if proposal.Status != model.ProposalActive {
		return ErrVotingNotActive
	}

	proposal.Status = model.ProposalCancelled
	proposal.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceProposal(ctx, proposal); err != nil {
		return fmt.Errorf("replace proposal %d: %w", id, err)
	}

	s.emit(ctx, "governance.proposal_cancel", proposer, fmt.Sprintf("id=%d", id))
	return nil
}

// Expire rejects a proposal nobody finalized within the grace period
// after its voting window closed. Anyone may call it.
func (s *GovernanceService) Expire(ctx context.Context, caller model.Account, id uint32) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	if err := s.auth.Require(ctx, caller); err != nil {
		return err
	}

	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return ErrProposalNotFound
	}
	if proposal.Status != model.ProposalActive {
		return ErrVotingNotActive
	}
	if s.clock.Now() <= proposal.EndTime+state.GracePeriod {
		return ErrProposalNotExpired
	}

	proposal.Status = model.ProposalExpired
	proposal.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceProposal(ctx, proposal); err != nil {
		return fmt.Errorf("replace proposal %d: %w", id, err)
	}

	s.emit(ctx, "governance.expire", caller, fmt.Sprintf("id=%d", id))
	return nil
}

// AddMember registers a new DAO member. Admin only.
func (s *GovernanceService) AddMember(ctx context.Context, admin, newMember model.Account) error {
	state, err := s.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if containsAccount(state.Members, newMember) {
		return ErrAlreadyAMember
	}

	state.Members = append(state.Members, newMember)
	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceGovernanceState(ctx, state); err != nil {
		return fmt.Errorf("store governance state: %w", err)
	}

	s.emit(ctx, "governance.member_add", newMember, "")
	return nil
}

// RemoveMember drops a DAO member. Admin only.
func (s *GovernanceService) RemoveMember(ctx context.Context, admin, member model.Account) error {
	state, err := s.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}

	kept := make([]model.Account, 0, len(state.Members))
	found := false
	for _, existing := range state.Members {
		if existing == member {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return ErrNotAMember
	}

	state.Members = kept
	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceGovernanceState(ctx, state); err != nil {
		return fmt.Errorf("store governance state: %w", err)
	}

	s.emit(ctx, "governance.member_remove", member, "")
	return nil
}

// Proposal returns a proposal by id.
func (s *GovernanceService) Proposal(ctx context.Context, id uint32) (model.Proposal, error) {
	proposal, found, err := s.repo.ProposalByID(ctx, id)
	if err != nil {
		return model.Proposal{}, fmt.Errorf("load proposal %d: %w", id, err)
	}
	if !found {
		return model.Proposal{}, ErrProposalNotFound
	}
	return proposal, nil
}

// Config returns the governance configuration snapshot.
func (s *GovernanceService) Config(ctx context.Context) (model.GovernanceConfig, error) {
	state, err := s.state(ctx)
	if err != nil {
		return model.GovernanceConfig{}, err
	}
	return model.GovernanceConfig{
		Admin:            state.Admin,
		QuorumPercentage: state.QuorumPercentage,
		VotingDuration:   state.VotingDuration,
		GracePeriod:      state.GracePeriod,
		MemberCount:      uint32(len(state.Members)),
	}, nil
}

func (s *GovernanceService) state(ctx context.Context) (model.GovernanceState, error) {
	state, exists, err := s.repo.GovernanceState(ctx)
	if err != nil {
		return model.GovernanceState{}, fmt.Errorf("load governance state: %w", err)
	}
	if !exists {
		return model.GovernanceState{}, ErrNotInitialized
	}
	return state, nil
}

func (s *GovernanceService) requireAdmin(ctx context.Context, admin model.Account) (model.GovernanceState, error) {
	state, err := s.state(ctx)
	if err != nil {
		return model.GovernanceState{}, err
	}
	if state.Admin != admin {
		return model.GovernanceState{}, ErrUnauthorized
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return model.GovernanceState{}, err
	}
	return state, nil
}

func (s *GovernanceService) emit(ctx context.Context, topic string, subject model.Account, payload string) {
	if err := s.events.Emit(ctx, model.Event{
		ID:      uuid.NewString(),
		Topic:   topic,
		Subject: subject,
		Payload: payload,
		At:      time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("event not emitted", zap.String("topic", topic), zap.Error(err))
	}
}
