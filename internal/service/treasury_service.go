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

// TreasuryService owns the multisig withdrawal workflow: deposits into
// the escrow vault and threshold-approved withdrawals out of it.
type TreasuryService struct {
	repo   TreasuryRepository
	auth   Authorizer
	tokens TokenMover
	events Emitter
	clock  clock.Clock
	logger *zap.Logger

	mu     sync.Mutex
	nextID uint32
}

// NewTreasuryService builds the treasury service and seeds the proposal
// id counter from storage.
func NewTreasuryService(
	ctx context.Context,
	repo TreasuryRepository,
	auth Authorizer,
	tokens TokenMover,
	events Emitter,
	clk clock.Clock,
	logger *zap.Logger,
) (*TreasuryService, error) {
	maxID, exists, err := repo.MaxWithdrawalID(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed withdrawal id counter: %w", err)
	}

	next := uint32(0)
	if exists {
		next = maxID + 1
	}

	return &TreasuryService{
		repo:   repo,
		auth:   auth,
		tokens: tokens,
		events: events,
		clock:  clk,
		logger: logger,
		nextID: next,
	}, nil
}

// Initialize registers the admin, signer set and approval threshold. It
// may be called once.
func (s *TreasuryService) Initialize(ctx context.Context, admin model.Account, signers []model.Account, threshold uint32) error {
	if _, exists, err := s.repo.TreasuryState(ctx); err != nil {
		return fmt.Errorf("load treasury state: %w", err)
	} else if exists {
		return ErrAlreadyInitialized
	}
	if threshold == 0 || int(threshold) > len(signers) {
		return ErrInvalidThreshold
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return err
	}

	if err := s.repo.ReplaceTreasuryState(ctx, model.TreasuryState{
		Admin:     admin,
		Signers:   signers,
		Threshold: threshold,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("store treasury state: %w", err)
	}

	s.emit(ctx, "treasury.init", admin, fmt.Sprintf("signers=%d threshold=%d", len(signers), threshold))
	return nil
}

// Deposit moves tokens from any account into the treasury vault.
func (s *TreasuryService) Deposit(ctx context.Context, from model.Account, token model.Token, amount *big.Int) error {
	if _, err := s.state(ctx); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if err := s.auth.Require(ctx, from); err != nil {
		return err
	}

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:     uuid.NewString(),
		Kind:   model.TransferDeposit,
		Token:  token,
		From:   from,
		To:     model.EscrowAccount,
		Amount: amount,
		At:     s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	s.emit(ctx, "treasury.deposit", from, fmt.Sprintf("amount=%s", amount))
	return nil
}

// CreateWithdrawal opens a withdrawal request. Only signers may propose;
// the proposer counts as the first approval.
func (s *TreasuryService) CreateWithdrawal(
	ctx context.Context,
	proposer model.Account,
	token model.Token,
	recipient model.Account,
	amount *big.Int,
	memo string,
) (uint32, error) {
	state, err := s.state(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.auth.Require(ctx, proposer); err != nil {
		return 0, err
	}
	if !containsAccount(state.Signers, proposer) {
		return 0, ErrNotASigner
	}
	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	request := model.WithdrawalRequest{
		ID:        id,
		Proposer:  proposer,
		Token:     token,
		Recipient: recipient,
		Amount:    new(big.Int).Set(amount),
		Memo:      memo,
		Approvals: []model.Account{proposer},
		Status:    model.WithdrawalPending,
		CreatedAt: s.clock.Now(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.InsertWithdrawals(ctx, []model.WithdrawalRequest{request}); err != nil {
		return 0, fmt.Errorf("insert withdrawal: %w", err)
	}
	s.nextID++

	s.emit(ctx, "treasury.withdrawal_create", proposer, fmt.Sprintf("id=%d amount=%s", id, amount))
	return id, nil
}

// Approve records a signer's approval. Meeting the threshold flips the
// request to Approved.
func (s *TreasuryService) Approve(ctx context.Context, signer model.Account, id uint32) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	if err := s.auth.Require(ctx, signer); err != nil {
		return err
	}
	if !containsAccount(state.Signers, signer) {
		return ErrNotASigner
	}

	request, found, err := s.repo.WithdrawalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load withdrawal %d: %w", id, err)
	}
	if !found {
		return ErrWithdrawalNotFound
	}
	if request.Status != model.WithdrawalPending {
		return ErrWithdrawalNotPending
	}
	if containsAccount(request.Approvals, signer) {
		return ErrAlreadyApproved
	}

	request.Approvals = append(request.Approvals, signer)
	if uint32(len(request.Approvals)) >= state.Threshold {
		request.Status = model.WithdrawalApproved
	}
	request.UpdatedAt = time.Now().UTC()

	if err := s.repo.ReplaceWithdrawal(ctx, request); err != nil {
		return fmt.Errorf("replace withdrawal %d: %w", id, err)
	}

	s.emit(ctx, "treasury.approve", signer, fmt.Sprintf("id=%d approvals=%d", id, len(request.Approvals)))
	return nil
}

// Execute pays out an approved withdrawal if the vault balance covers it.
func (s *TreasuryService) Execute(ctx context.Context, executor model.Account, id uint32) error {
	if _, err := s.state(ctx); err != nil {
		return err
	}
	if err := s.auth.Require(ctx, executor); err != nil {
		return err
	}

	request, found, err := s.repo.WithdrawalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load withdrawal %d: %w", id, err)
	}
	if !found {
		return ErrWithdrawalNotFound
	}
	if request.Status != model.WithdrawalApproved {
		return ErrWithdrawalNotApproved
	}

	balance, err := s.tokens.Balance(ctx, request.Token, model.EscrowAccount)
	if err != nil {
		return fmt.Errorf("vault balance: %w", err)
	}
	if balance.Cmp(request.Amount) < 0 {
		return ErrInsufficientBalance
	}

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:     uuid.NewString(),
		Kind:   model.TransferOutflow,
		Token:  request.Token,
		From:   model.EscrowAccount,
		To:     request.Recipient,
		Amount: request.Amount,
		At:     s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("execute withdrawal %d: %w", id, err)
	}

	request.Status = model.WithdrawalExecuted
	request.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceWithdrawal(ctx, request); err != nil {
		return fmt.Errorf("replace withdrawal %d: %w", id, err)
	}

	s.emit(ctx, "treasury.execute", request.Recipient, fmt.Sprintf("id=%d amount=%s", id, request.Amount))
	return nil
}

// AddSigner registers a new signer. Admin only.
func (s *TreasuryService) AddSigner(ctx context.Context, admin, newSigner model.Account) error {
	state, err := s.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if containsAccount(state.Signers, newSigner) {
		return ErrAlreadyASigner
	}

	state.Signers = append(state.Signers, newSigner)
	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceTreasuryState(ctx, state); err != nil {
		return fmt.Errorf("store treasury state: %w", err)
	}

	s.emit(ctx, "treasury.signer_add", newSigner, "")
	return nil
}

// RemoveSigner drops a signer, provided the threshold stays achievable.
// Admin only.
func (s *TreasuryService) RemoveSigner(ctx context.Context, admin, signer model.Account) error {
	state, err := s.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if uint32(len(state.Signers)) <= state.Threshold {
		return ErrInvalidThreshold
	}

	kept := make([]model.Account, 0, len(state.Signers))
	found := false
	for _, existing := range state.Signers {
		if existing == signer {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return ErrNotASigner
	}

	state.Signers = kept
	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceTreasuryState(ctx, state); err != nil {
		return fmt.Errorf("store treasury state: %w", err)
	}

	s.emit(ctx, "treasury.signer_remove", signer, "")
	return nil
}

// UpdateThreshold changes the approval threshold. Admin only.
func (s *TreasuryService) UpdateThreshold(ctx context.Context, admin model.Account, threshold uint32) error {
	state, err := s.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if threshold == 0 || int(threshold) > len(state.Signers) {
		return ErrInvalidThreshold
	}

	state.Threshold = threshold
	state.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceTreasuryState(ctx, state); err != nil {
		return fmt.Errorf("store treasury state: %w", err)
	}

	s.emit(ctx, "treasury.threshold_update", admin, fmt.Sprintf("threshold=%d", threshold))
	return nil
}

// Withdrawal returns a withdrawal request by id.
func (s *TreasuryService) Withdrawal(ctx context.Context, id uint32) (model.WithdrawalRequest, error) {
	request, found, err := s.repo.WithdrawalByID(ctx, id)
	if err != nil {
		return model.WithdrawalRequest{}, fmt.Errorf("load withdrawal %d: %w", id, err)
	}
	if !found {
		return model.WithdrawalRequest{}, ErrWithdrawalNotFound
	}
	return request, nil
}

// Config returns the treasury configuration snapshot.
func (s *TreasuryService) Config(ctx context.Context) (model.TreasuryConfig, error) {
	state, err := s.state(ctx)
	if err != nil {
		return model.TreasuryConfig{}, err
	}
	s.mu.Lock()
	proposals := s.nextID
	s.mu.Unlock()

	return model.TreasuryConfig{
		Admin:     state.Admin,
		Signers:   state.Signers,
		Threshold: state.Threshold,
		Proposals: proposals,
	}, nil
}

func (s *TreasuryService) state(ctx context.Context) (model.TreasuryState, error) {
	state, exists, err := s.repo.TreasuryState(ctx)
	if err != nil {
		return model.TreasuryState{}, fmt.Errorf("load treasury state: %w", err)
	}
	if !exists {
		return model.TreasuryState{}, ErrNotInitialized
	}
	return state, nil
}

func (s *TreasuryService) requireAdmin(ctx context.Context, admin model.Account) (model.TreasuryState, error) {
	state, err := s.state(ctx)
	if err != nil {
		return model.TreasuryState{}, err
	}
	if state.Admin != admin {
		return model.TreasuryState{}, ErrUnauthorized
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return model.TreasuryState{}, err
	}
	return state, nil
}

func (s *TreasuryService) emit(ctx context.Context, topic string, subject model.Account, payload string) {
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

func containsAccount(accounts []model.Account, account model.Account) bool {
	for _, a := range accounts {
		if a == account {
			return true
		}
	}
	return false
}
