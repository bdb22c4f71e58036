package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/accrual"
	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/model"
)

const moduleStreams = "payroll_stream"

// StreamService owns payroll stream records: creation, claims,
// cancellation and progress queries. The id counter is seeded once
// from storage and advanced in memory under the mutex.
type StreamService struct {
	repo   StreamRepository
	auth   Authorizer
	tokens TokenMover
	events Emitter
	clock  clock.Clock
	logger *zap.Logger

	mu     sync.Mutex
	nextID uint32
}

// NewStreamService builds the stream service and seeds the id counter
// from the highest persisted stream id.
func NewStreamService(
	ctx context.Context,
	repo StreamRepository,
	auth Authorizer,
	tokens TokenMover,
	events Emitter,
	clk clock.Clock,
	logger *zap.Logger,
) (*StreamService, error) {
	maxID, exists, err := repo.MaxStreamID(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed stream id counter: %w", err)
	}

	next := uint32(0)
	if exists {
		next = maxID + 1
	}

	return &StreamService{
		repo:   repo,
		auth:   auth,
		tokens: tokens,
		events: events,
		clock:  clk,
		logger: logger,
		nextID: next,
	}, nil
}

// Initialize registers the organization admin. It may be called once.
func (s *StreamService) Initialize(ctx context.Context, admin model.Account) error {
	if _, exists, err := s.repo.ModuleAdmin(ctx, moduleStreams); err != nil {
		return fmt.Errorf("load stream admin: %w", err)
	} else if exists {
		return ErrAlreadyInitialized
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return err
	}
	if err := s.repo.SetModuleAdmin(ctx, moduleStreams, admin); err != nil {
		return fmt.Errorf("store stream admin: %w", err)
	}

	s.emit(ctx, "stream.init", admin, "")
	return nil
}

// CreateStream opens a linear payment stream and escrows its total amount.
func (s *StreamService) CreateStream(
	ctx context.Context,
	sender model.Account,
	recipient model.Account,
	token model.Token,
	totalAmount *big.Int,
	startTime uint64,
	endTime uint64,
) (uint32, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return 0, err
	}
	if err := s.auth.Require(ctx, sender); err != nil {
		return 0, err
	}

	now := s.clock.Now()
	params := model.CreateStreamParams{
		Recipient:   recipient,
		Token:       token,
		TotalAmount: totalAmount,
		StartTime:   startTime,
		EndTime:     endTime,
	}
	if err := validateStreamParams(sender, params, now); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.escrow(ctx, sender, params, s.nextID); err != nil {
		return 0, err
	}

	stream := s.buildStream(sender, params, s.nextID)
	if err := s.repo.InsertStreams(ctx, []model.Stream{stream}); err != nil {
		return 0, fmt.Errorf("insert stream: %w", err)
	}
	if err := s.repo.InsertIndexEntries(ctx, indexEntriesFor(model.KindStream, stream.ID, sender, recipient, stream.UpdatedAt)); err != nil {
		return 0, fmt.Errorf("index stream: %w", err)
	}
	s.nextID++

	s.emit(ctx, "stream.create", sender, fmt.Sprintf("id=%d", stream.ID))
	return stream.ID, nil
}

// CreateStreamBatch creates several streams for one sender atomically:
// every entry is validated before any escrow transfer or write happens,
// so a single invalid entry aborts the whole batch.
func (s *StreamService) CreateStreamBatch(
	ctx context.Context,
	sender model.Account,
	entries []model.CreateStreamParams,
) ([]uint32, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Require(ctx, sender); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrInvalidSchedule
	}

	now := s.clock.Now()
	for _, params := range entries {
		if err := validateStreamParams(sender, params, now); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	streams := make([]model.Stream, 0, len(entries))
	indexEntries := make([]model.IndexEntry, 0, 2*len(entries))
	ids := make([]uint32, 0, len(entries))

	for i, params := range entries {
		id := s.nextID + uint32(i)
		if err := s.escrow(ctx, sender, params, id); err != nil {
			return nil, err
		}
		stream := s.buildStream(sender, params, id)
		streams = append(streams, stream)
		indexEntries = append(indexEntries, indexEntriesFor(model.KindStream, id, sender, params.Recipient, stream.UpdatedAt)...)
		ids = append(ids, id)
	}

	if err := s.repo.InsertStreams(ctx, streams); err != nil {
		return nil, fmt.Errorf("insert stream batch: %w", err)
	}
	if err := s.repo.InsertIndexEntries(ctx, indexEntries); err != nil {
		return nil, fmt.Errorf("index stream batch: %w", err)
	}
	s.nextID += uint32(len(entries))

	s.emit(ctx, "stream.create_batch", sender, fmt.Sprintf("count=%d", len(ids)))
	return ids, nil
}

// Claim settles the recipient's currently claimable balance. It returns
// the settled amount; a claim with nothing accrued beyond the already
// claimed amount fails with ErrNothingToClaim.
func (s *StreamService) Claim(ctx context.Context, recipient model.Account, id uint32) (*big.Int, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Require(ctx, recipient); err != nil {
		return nil, err
	}

	stream, found, err := s.repo.StreamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load stream %d: %w", id, err)
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	if stream.Recipient != recipient {
		return nil, ErrUnauthorized
	}
	if stream.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}

	now := s.clock.Now()
	accrued := accrual.StreamAccrued(stream.TotalAmount, stream.StartTime, stream.EndTime, now)
	claimable := accrual.Claimable(accrued, stream.ClaimedAmount)
	if claimable.Sign() <= 0 {
		return nil, ErrNothingToClaim
	}

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:         uuid.NewString(),
		Kind:       model.TransferPayout,
		Token:      stream.Token,
		From:       model.EscrowAccount,
		To:         recipient,
		Amount:     claimable,
		Reference:  model.KindStream,
		ScheduleID: id,
		At:         now,
	}); err != nil {
		return nil, fmt.Errorf("payout stream %d: %w", id, err)
	}

	stream.ClaimedAmount = new(big.Int).Add(stream.ClaimedAmount, claimable)
	if stream.ClaimedAmount.Cmp(stream.TotalAmount) >= 0 {
		stream.Status = model.StreamCompleted
	}
	stream.LastClaimTime = now
	stream.UpdatedAt = time.Now().UTC()

	if err := s.repo.InsertClaims(ctx, []model.Claim{{
		Kind:       model.KindStream,
		ScheduleID: id,
		Recipient:  recipient,
		Amount:     claimable,
		ClaimedAt:  now,
	}}); err != nil {
		return nil, fmt.Errorf("record stream claim %d: %w", id, err)
	}
	if err := s.repo.ReplaceStream(ctx, stream); err != nil {
		return nil, fmt.Errorf("replace stream %d: %w", id, err)
	}

	s.emit(ctx, "stream.claim", recipient, fmt.Sprintf("id=%d amount=%s", id, claimable))
	return claimable, nil
}

// Cancel terminates a stream: the accrued-but-unclaimed amount is settled
// to the recipient, the remainder refunded to the sender. It returns the
// refunded amount. Settleable + refund + claimed equals the stream total
// by construction.
func (s *StreamService) Cancel(ctx context.Context, sender model.Account, id uint32) (*big.Int, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Require(ctx, sender); err != nil {
		return nil, err
	}

	stream, found, err := s.repo.StreamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load stream %d: %w", id, err)
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	if stream.Sender != sender {
		return nil, ErrUnauthorized
	}
	if stream.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}

	now := s.clock.Now()
	accrued := accrual.StreamAccrued(stream.TotalAmount, stream.StartTime, stream.EndTime, now)
	settleable := accrual.Claimable(accrued, stream.ClaimedAmount)

	refund := new(big.Int).Sub(stream.TotalAmount, stream.ClaimedAmount)
	refund.Sub(refund, settleable)

	if settleable.Sign() > 0 {
		if err := s.tokens.Move(ctx, model.Transfer{
			ID:         uuid.NewString(),
			Kind:       model.TransferPayout,
			Token:      stream.Token,
			From:       model.EscrowAccount,
			To:         stream.Recipient,
			Amount:     settleable,
			Reference:  model.KindStream,
			ScheduleID: id,
			At:         now,
		}); err != nil {
			return nil, fmt.Errorf("settle stream %d: %w", id, err)
		}
	}
	if refund.Sign() > 0 {
		if err := s.tokens.Move(ctx, model.Transfer{
			ID:         uuid.NewString(),
			Kind:       model.TransferRefund,
			Token:      stream.Token,
			From:       model.EscrowAccount,
			To:         sender,
			Amount:     refund,
			Reference:  model.KindStream,
			ScheduleID: id,
			At:         now,
		}); err != nil {
			return nil, fmt.Errorf("refund stream %d: %w", id, err)
		}
	}

	stream.ClaimedAmount = new(big.Int).Add(stream.ClaimedAmount, settleable)
	stream.Status = model.StreamCancelled
	stream.UpdatedAt = time.Now().UTC()

	// The settlement counts toward the claimed total, so it gets a
	// claim-history row like any voluntary claim.
	if settleable.Sign() > 0 {
		if err := s.repo.InsertClaims(ctx, []model.Claim{{
			Kind:       model.KindStream,
			ScheduleID: id,
			Recipient:  stream.Recipient,
			Amount:     settleable,
			ClaimedAt:  now,
		}}); err != nil {
			return nil, fmt.Errorf("record stream settlement %d: %w", id, err)
		}
	}
	if err := s.repo.ReplaceStream(ctx, stream); err != nil {
		return nil, fmt.Errorf("replace stream %d: %w", id, err)
	}

	s.emit(ctx, "stream.cancel", sender, fmt.Sprintf("id=%d refund=%s", id, refund))
	return refund, nil
}

// Stream returns the full stream record.
func (s *StreamService) Stream(ctx context.Context, id uint32) (model.Stream, error) {
	stream, found, err := s.repo.StreamByID(ctx, id)
	if err != nil {
		return model.Stream{}, fmt.Errorf("load stream %d: %w", id, err)
	}
	if !found {
		return model.Stream{}, ErrScheduleNotFound
	}
	return stream, nil
}

// Claimable returns the amount the recipient could claim right now.
func (s *StreamService) Claimable(ctx context.Context, id uint32) (*big.Int, error) {
	stream, err := s.Stream(ctx, id)
	if err != nil {
		return nil, err
	}
	if stream.Status.Terminal() {
		return big.NewInt(0), nil
	}
	accrued := accrual.StreamAccrued(stream.TotalAmount, stream.StartTime, stream.EndTime, s.clock.Now())
	return accrual.Claimable(accrued, stream.ClaimedAmount), nil
}

// Progress returns a point-in-time projection of the stream. It never
// mutates state: repeated calls with no state change return identical
// results.
func (s *StreamService) Progress(ctx context.Context, id uint32) (model.Progress, error) {
	stream, err := s.Stream(ctx, id)
	if err != nil {
		return model.Progress{}, err
	}

	accrued := accrual.StreamAccrued(stream.TotalAmount, stream.StartTime, stream.EndTime, s.clock.Now())
	claimable := accrual.Claimable(accrued, stream.ClaimedAmount)
	if stream.Status.Terminal() {
		claimable = big.NewInt(0)
	}

	return model.Progress{
		Total:     stream.TotalAmount,
		Accrued:   accrued,
		Claimed:   stream.ClaimedAmount,
		Claimable: claimable,
		Status:    string(stream.Status),
	}, nil
}

// StreamsBySender returns the ids of streams the account created, in
// creation order.
func (s *StreamService) StreamsBySender(ctx context.Context, sender model.Account) ([]uint32, error) {
	return s.repo.ScheduleIDs(ctx, model.KindStream, sender, model.RoleSender)
}

// StreamsByRecipient returns the ids of streams paying the account, in
// creation order.
func (s *StreamService) StreamsByRecipient(ctx context.Context, recipient model.Account) ([]uint32, error) {
	return s.repo.ScheduleIDs(ctx, model.KindStream, recipient, model.RoleRecipient)
}

// ClaimHistory returns the append-only claim log of a stream.
func (s *StreamService) ClaimHistory(ctx context.Context, id uint32) ([]model.Claim, error) {
	return s.repo.ClaimsBySchedule(ctx, model.KindStream, id)
}

// Admin returns the registered organization admin.
func (s *StreamService) Admin(ctx context.Context) (model.Account, error) {
	admin, exists, err := s.repo.ModuleAdmin(ctx, moduleStreams)
	if err != nil {
		return "", fmt.Errorf("load stream admin: %w", err)
	}
	if !exists {
		return "", ErrNotInitialized
	}
	return admin, nil
}

func (s *StreamService) ensureInitialized(ctx context.Context) error {
	_, exists, err := s.repo.ModuleAdmin(ctx, moduleStreams)
	if err != nil {
		return fmt.Errorf("load stream admin: %w", err)
	}
	if !exists {
		return ErrNotInitialized
	}
	return nil
}

func (s *StreamService) escrow(ctx context.Context, sender model.Account, params model.CreateStreamParams, id uint32) error {
	if err := s.tokens.Move(ctx, model.Transfer{
		ID:         uuid.NewString(),
		Kind:       model.TransferEscrow,
		Token:      params.Token,
		From:       sender,
		To:         model.EscrowAccount,
		Amount:     params.TotalAmount,
		Reference:  model.KindStream,
		ScheduleID: id,
		At:         s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("escrow stream funds: %w", err)
	}
	return nil
}

func (s *StreamService) buildStream(sender model.Account, params model.CreateStreamParams, id uint32) model.Stream {
	return model.Stream{
		ID:            id,
		Sender:        sender,
		Recipient:     params.Recipient,
		Token:         params.Token,
		TotalAmount:   new(big.Int).Set(params.TotalAmount),
		ClaimedAmount: big.NewInt(0),
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
		LastClaimTime: params.StartTime,
		Status:        model.StreamActive,
		UpdatedAt:     time.Now().UTC(),
	}
}

func (s *StreamService) emit(ctx context.Context, topic string, subject model.Account, payload string) {
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

func validateStreamParams(sender model.Account, params model.CreateStreamParams, now uint64) error {
	if sender == params.Recipient {
		return ErrInvalidRecipient
	}
	if params.TotalAmount == nil || params.TotalAmount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if params.EndTime <= params.StartTime {
		return ErrInvalidDuration
	}
	if params.StartTime < now {
		return ErrInvalidStartTime
	}
	return nil
}

func indexEntriesFor(kind model.ScheduleKind, id uint32, sender, recipient model.Account, createdAt time.Time) []model.IndexEntry {
	return []model.IndexEntry{
		{Account: sender, Role: model.RoleSender, Kind: kind, ScheduleID: id, CreatedAt: createdAt},
		{Account: recipient, Role: model.RoleRecipient, Kind: kind, ScheduleID: id, CreatedAt: createdAt},
	}
}
