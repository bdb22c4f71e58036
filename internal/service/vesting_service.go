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

const moduleVesting = "vesting"

// VestingService owns cliff + linear vesting schedules: grants, claims,
// revocation and progress queries.
type VestingService struct {
	repo   VestingRepository
	auth   Authorizer
	tokens TokenMover
	events Emitter
	clock  clock.Clock
	logger *zap.Logger

	mu     sync.Mutex
	nextID uint32
}

// NewVestingService builds the vesting service and seeds the id counter
// from the highest persisted schedule id.
func NewVestingService(
	ctx context.Context,
	repo VestingRepository,
	auth Authorizer,
	tokens TokenMover,
	events Emitter,
	clk clock.Clock,
	logger *zap.Logger,
) (*VestingService, error) {
	maxID, exists, err := repo.MaxVestingScheduleID(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed vesting id counter: %w", err)
	}

	next := uint32(0)
	if exists {
		next = maxID + 1
	}

	return &VestingService{
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
func (s *VestingService) Initialize(ctx context.Context, admin model.Account) error {
	if _, exists, err := s.repo.ModuleAdmin(ctx, moduleVesting); err != nil {
		return fmt.Errorf("load vesting admin: %w", err)
	} else if exists {
		return ErrAlreadyInitialized
	}
	if err := s.auth.Require(ctx, admin); err != nil {
		return err
	}
	if err := s.repo.SetModuleAdmin(ctx, moduleVesting, admin); err != nil {
		return fmt.Errorf("store vesting admin: %w", err)
	}

	s.emit(ctx, "vesting.init", admin, "")
	return nil
}

// CreateSchedule opens a vesting grant and escrows its total amount.
// Grantor and beneficiary may be the same account.
func (s *VestingService) CreateSchedule(
	ctx context.Context,
	grantor model.Account,
	beneficiary model.Account,
	token model.Token,
	totalAmount *big.Int,
	startTime uint64,
	cliffDuration uint64,
	cliffAmount *big.Int,
	totalDuration uint64,
	label string,
	revocable bool,
) (uint32, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return 0, err
	}
	if err := s.auth.Require(ctx, grantor); err != nil {
		return 0, err
	}

	if totalAmount == nil || totalAmount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}
	if totalDuration == 0 {
		return 0, ErrInvalidSchedule
	}
	if cliffDuration >= totalDuration {
		return 0, ErrInvalidDuration
	}
	if cliffAmount == nil || cliffAmount.Sign() < 0 || cliffAmount.Cmp(totalAmount) > 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	id := s.nextID

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:         uuid.NewString(),
		Kind:       model.TransferEscrow,
		Token:      token,
		From:       grantor,
		To:         model.EscrowAccount,
		Amount:     totalAmount,
		Reference:  model.KindVesting,
		ScheduleID: id,
		At:         now,
	}); err != nil {
		return 0, fmt.Errorf("escrow vesting funds: %w", err)
	}

	schedule := model.VestingSchedule{
		ID:            id,
		Grantor:       grantor,
		Beneficiary:   beneficiary,
		Token:         token,
		TotalAmount:   new(big.Int).Set(totalAmount),
		ClaimedAmount: big.NewInt(0),
		StartTime:     startTime,
		CliffDuration: cliffDuration,
		CliffAmount:   new(big.Int).Set(cliffAmount),
		TotalDuration: totalDuration,
		Label:         label,
		Revocable:     revocable,
		Status:        model.VestingActive,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.repo.InsertVestingSchedules(ctx, []model.VestingSchedule{schedule}); err != nil {
		return 0, fmt.Errorf("insert vesting schedule: %w", err)
	}
	if err := s.repo.InsertIndexEntries(ctx, indexEntriesFor(model.KindVesting, id, grantor, beneficiary, schedule.UpdatedAt)); err != nil {
		return 0, fmt.Errorf("index vesting schedule: %w", err)
	}
	s.nextID++

	s.emit(ctx, "vesting.create", grantor, fmt.Sprintf("id=%d label=%s", id, label))
	return id, nil
}

// Claim settles the beneficiary's currently vested-but-unclaimed balance.
func (s *VestingService) Claim(ctx context.Context, beneficiary model.Account, id uint32) (*big.Int, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Require(ctx, beneficiary); err != nil {
		return nil, err
	}

	schedule, found, err := s.repo.VestingScheduleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vesting schedule %d: %w", id, err)
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	if schedule.Beneficiary != beneficiary {
		return nil, ErrUnauthorized
	}
	if schedule.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}

	now := s.clock.Now()
	vested := accrual.VestingAccrued(
		schedule.TotalAmount, schedule.CliffAmount,
		schedule.StartTime, schedule.CliffDuration, schedule.TotalDuration, now,
	)
	claimable := accrual.Claimable(vested, schedule.ClaimedAmount)
	if claimable.Sign() <= 0 {
		return nil, ErrNothingToClaim
	}

	if err := s.tokens.Move(ctx, model.Transfer{
		ID:         uuid.NewString(),
		Kind:       model.TransferPayout,
		Token:      schedule.Token,
		From:       model.EscrowAccount,
		To:         beneficiary,
		Amount:     claimable,
		Reference:  model.KindVesting,
		ScheduleID: id,
		At:         now,
	}); err != nil {
		return nil, fmt.Errorf("payout vesting schedule %d: %w", id, err)
	}

	schedule.ClaimedAmount = new(big.Int).Add(schedule.ClaimedAmount, claimable)
	if schedule.ClaimedAmount.Cmp(schedule.TotalAmount) >= 0 {
		schedule.Status = model.VestingFullyClaimed
	}
	schedule.UpdatedAt = time.Now().UTC()

	if err := s.repo.InsertClaims(ctx, []model.Claim{{
		Kind:       model.KindVesting,
		ScheduleID: id,
		Recipient:  beneficiary,
		Amount:     claimable,
		ClaimedAt:  now,
	}}); err != nil {
		return nil, fmt.Errorf("record vesting claim %d: %w", id, err)
	}
	if err := s.repo.ReplaceVestingSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("replace vesting schedule %d: %w", id, err)
	}

	s.emit(ctx, "vesting.claim", beneficiary, fmt.Sprintf("id=%d amount=%s", id, claimable))
	return claimable, nil
}

// Revoke terminates a revocable schedule. The vested-but-unclaimed amount
// is settled to the beneficiary, the unvested remainder returns to the
// grantor, and the schedule total is capped to the vested amount so later
// progress queries show no claimable remainder. It returns the unvested
// amount.
func (s *VestingService) Revoke(ctx context.Context, grantor model.Account, id uint32) (*big.Int, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Require(ctx, grantor); err != nil {
		return nil, err
	}

	schedule, found, err := s.repo.VestingScheduleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load vesting schedule %d: %w", id, err)
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	if schedule.Grantor != grantor {
		return nil, ErrUnauthorized
	}
	if schedule.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}
	if !schedule.Revocable {
		return nil, ErrNotRevocable
	}

	now := s.clock.Now()
	vested := accrual.VestingAccrued(
		schedule.TotalAmount, schedule.CliffAmount,
		schedule.StartTime, schedule.CliffDuration, schedule.TotalDuration, now,
	)
	settleable := accrual.Claimable(vested, schedule.ClaimedAmount)
	unvested := new(big.Int).Sub(schedule.TotalAmount, vested)

	if settleable.Sign() > 0 {
		if err := s.tokens.Move(ctx, model.Transfer{
			ID:         uuid.NewString(),
			Kind:       model.TransferPayout,
			Token:      schedule.Token,
			From:       model.EscrowAccount,
			To:         schedule.Beneficiary,
			Amount:     settleable,
			Reference:  model.KindVesting,
			ScheduleID: id,
			At:         now,
		}); err != nil {
			return nil, fmt.Errorf("settle vesting schedule %d: %w", id, err)
		}
	}
	if unvested.Sign() > 0 {
		if err := s.tokens.Move(ctx, model.Transfer{
			ID:         uuid.NewString(),
			Kind:       model.TransferRefund,
			Token:      schedule.Token,
			From:       model.EscrowAccount,
			To:         grantor,
			Amount:     unvested,
			Reference:  model.KindVesting,
			ScheduleID: id,
			At:         now,
		}); err != nil {
			return nil, fmt.Errorf("return unvested for schedule %d: %w", id, err)
		}
	}

	// Cap the total to the vested amount. Claimed is settled up to the
	// same point, so the revoked record reports zero claimable.
	schedule.TotalAmount = vested
	schedule.ClaimedAmount = new(big.Int).Set(vested)
	schedule.Status = model.VestingRevoked
	schedule.UpdatedAt = time.Now().UTC()

	// The settlement counts toward the claimed total, so it gets a
	// claim-history row like any voluntary claim.
	if settleable.Sign() > 0 {
		if err := s.repo.InsertClaims(ctx, []model.Claim{{
			Kind:       model.KindVesting,
			ScheduleID: id,
			Recipient:  schedule.Beneficiary,
			Amount:     settleable,
			ClaimedAt:  now,
		}}); err != nil {
			return nil, fmt.Errorf("record vesting settlement %d: %w", id, err)
		}
	}
	if err := s.repo.ReplaceVestingSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("replace vesting schedule %d: %w", id, err)
	}

	s.emit(ctx, "vesting.revoke", grantor, fmt.Sprintf("id=%d unvested=%s", id, unvested))
	return unvested, nil
}

// Schedule returns the full vesting record.
func (s *VestingService) Schedule(ctx context.Context, id uint32) (model.VestingSchedule, error) {
	schedule, found, err := s.repo.VestingScheduleByID(ctx, id)
	if err != nil {
		return model.VestingSchedule{}, fmt.Errorf("load vesting schedule %d: %w", id, err)
	}
	if !found {
		return model.VestingSchedule{}, ErrScheduleNotFound
	}
	return schedule, nil
}

// Progress returns a point-in-time projection of the schedule without
// mutating it.
func (s *VestingService) Progress(ctx context.Context, id uint32) (model.Progress, error) {
	schedule, err := s.Schedule(ctx, id)
	if err != nil {
		return model.Progress{}, err
	}

	vested := accrual.VestingAccrued(
		schedule.TotalAmount, schedule.CliffAmount,
		schedule.StartTime, schedule.CliffDuration, schedule.TotalDuration, s.clock.Now(),
	)
	claimable := accrual.Claimable(vested, schedule.ClaimedAmount)
	if schedule.Status.Terminal() {
		claimable = big.NewInt(0)
	}

	return model.Progress{
		Total:     schedule.TotalAmount,
		Accrued:   vested,
		Claimed:   schedule.ClaimedAmount,
		Claimable: claimable,
		Status:    string(schedule.Status),
	}, nil
}

// SchedulesByGrantor returns the ids of schedules the account granted, in
// creation order.
func (s *VestingService) SchedulesByGrantor(ctx context.Context, grantor model.Account) ([]uint32, error) {
	return s.repo.ScheduleIDs(ctx, model.KindVesting, grantor, model.RoleSender)
}

// SchedulesByBeneficiary returns the ids of schedules vesting to the
// account, in creation order.
func (s *VestingService) SchedulesByBeneficiary(ctx context.Context, beneficiary model.Account) ([]uint32, error) {
	return s.repo.ScheduleIDs(ctx, model.KindVesting, beneficiary, model.RoleRecipient)
}

// ClaimHistory returns the append-only claim log of a schedule.
func (s *VestingService) ClaimHistory(ctx context.Context, id uint32) ([]model.Claim, error) {
	return s.repo.ClaimsBySchedule(ctx, model.KindVesting, id)
}

// Admin returns the registered organization admin.
func (s *VestingService) Admin(ctx context.Context) (model.Account, error) {
	admin, exists, err := s.repo.ModuleAdmin(ctx, moduleVesting)
	if err != nil {
		return "", fmt.Errorf("load vesting admin: %w", err)
	}
	if !exists {
		return "", ErrNotInitialized
	}
	return admin, nil
}

func (s *VestingService) ensureInitialized(ctx context.Context) error {
	_, exists, err := s.repo.ModuleAdmin(ctx, moduleVesting)
	if err != nil {
		return fmt.Errorf("load vesting admin: %w", err)
	}
	if !exists {
		return ErrNotInitialized
	}
	return nil
}

func (s *VestingService) emit(ctx context.Context, topic string, subject model.Account, payload string) {
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
