// Package audit sweeps persisted schedules and checks that the escrow
// ledger still conserves value: claimed history matches claimed totals,
// nothing exceeds its schedule total, and the escrow account covers all
// outstanding obligations.
package audit

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/accrual"
	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/model"
	"github.com/lumendao/treasury-backend/pkg/workerpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository is the read surface the auditor sweeps.
	Repository interface {
		MaxStreamID(ctx context.Context) (uint32, bool, error)
		StreamByID(ctx context.Context, id uint32) (model.Stream, bool, error)
		MaxVestingScheduleID(ctx context.Context) (uint32, bool, error)
		VestingScheduleByID(ctx context.Context, id uint32) (model.VestingSchedule, bool, error)
		ClaimsBySchedule(ctx context.Context, kind model.ScheduleKind, id uint32) ([]model.Claim, error)
		TokenBalance(ctx context.Context, token model.Token, account model.Account) (*big.Int, error)
	}

	// Metrics records audit sweeps and violations.
	Metrics interface {
		ObserveRun(err error, started time.Time)
		ObserveViolations(count int)
	}
)

// Config bounds one audit service.
type Config struct {
	Interval time.Duration
	Workers  int
	RPS      int
}

// Service runs periodic conservation sweeps.
type Service struct {
	repo    Repository
	metrics Metrics
	clock   clock.Clock
	logger  *zap.Logger
	cfg     Config
	rl      ratelimit.Limiter
}

// NewService builds the audit service.
func NewService(repo Repository, metrics Metrics, clk clock.Clock, logger *zap.Logger, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 50
	}
	return &Service{
		repo:    repo,
		metrics: metrics,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
		rl:      ratelimit.New(cfg.RPS),
	}
}

// Run sweeps on the configured interval until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		started := time.Now()
		violations, err := s.Sweep(ctx)
		s.metrics.ObserveRun(err, started)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("audit sweep failed", zap.Error(err))
		} else {
			s.metrics.ObserveViolations(violations)
			s.logger.Info("audit sweep finished", zap.Int("violations", violations))
		}

		if err := clock.SleepWithContext(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
}

type job struct {
	kind model.ScheduleKind
	id   uint32
}

// Sweep audits every persisted schedule once and returns the number of
// conservation violations found.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	jobs, err := s.listJobs(ctx)
	if err != nil {
		return 0, err
	}

	var (
		mu          sync.Mutex
		violations  int
		outstanding = map[model.Token]*big.Int{}
	)
	record := func(owed map[model.Token]*big.Int, count int) {
		mu.Lock()
		defer mu.Unlock()
		violations += count
		for token, amount := range owed {
			sum, ok := outstanding[token]
			if !ok {
				sum = big.NewInt(0)
				outstanding[token] = sum
			}
			sum.Add(sum, amount)
		}
	}

	err = workerpool.Process(ctx, s.cfg.Workers, jobs, func(ctx context.Context, j job) error {
		s.rl.Take()
		owed, count, err := s.auditSchedule(ctx, j)
		if err != nil {
			return err
		}
		record(owed, count)
		return nil
	})
	if err != nil {
		return 0, err
	}

	escrowViolations, err := s.auditEscrow(ctx, outstanding)
	if err != nil {
		return 0, err
	}
	return violations + escrowViolations, nil
}

func (s *Service) listJobs(ctx context.Context) ([]job, error) {
	var jobs []job

	maxStream, found, err := s.repo.MaxStreamID(ctx)
	if err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}
	if found {
		for id := uint32(0); id <= maxStream; id++ {
			jobs = append(jobs, job{kind: model.KindStream, id: id})
		}
	}

	maxVesting, found, err := s.repo.MaxVestingScheduleID(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vesting schedules: %w", err)
	}
	if found {
		for id := uint32(0); id <= maxVesting; id++ {
			jobs = append(jobs, job{kind: model.KindVesting, id: id})
		}
	}

	return jobs, nil
}

// auditSchedule checks one schedule and returns its outstanding escrow
// obligation per token plus the violation count.
func (s *Service) auditSchedule(ctx context.Context, j job) (map[model.Token]*big.Int, int, error) {
	var (
		token    model.Token
		total    *big.Int
		claimed  *big.Int
		accrued  *big.Int
		found    bool
		terminal bool
		status   string
	)

	switch j.kind {
	case model.KindStream:
		stream, ok, err := s.repo.StreamByID(ctx, j.id)
		if err != nil {
			return nil, 0, fmt.Errorf("load stream %d: %w", j.id, err)
		}
		found = ok
		if ok {
			token = stream.Token
			total = stream.TotalAmount
			claimed = stream.ClaimedAmount
			terminal = stream.Status.Terminal()
			status = string(stream.Status)
			accrued = accrual.StreamAccrued(stream.TotalAmount, stream.StartTime, stream.EndTime, s.clock.Now())
		}
	case model.KindVesting:
		schedule, ok, err := s.repo.VestingScheduleByID(ctx, j.id)
		if err != nil {
			return nil, 0, fmt.Errorf("load vesting schedule %d: %w", j.id, err)
		}
		found = ok
		if ok {
			token = schedule.Token
			total = schedule.TotalAmount
			claimed = schedule.ClaimedAmount
			terminal = schedule.Status.Terminal()
			status = string(schedule.Status)
			accrued = accrual.VestingAccrued(
				schedule.TotalAmount, schedule.CliffAmount,
				schedule.StartTime, schedule.CliffDuration, schedule.TotalDuration, s.clock.Now(),
			)
		}
	}

	// IDs are assigned sequentially from zero, so a gap means lost data.
	if !found {
		s.logger.Warn("schedule missing", zap.String("kind", string(j.kind)), zap.Uint32("id", j.id))
		return nil, 1, nil
	}

	violations := 0
	flag := func(reason string) {
		violations++
		s.logger.Warn("conservation violation",
			zap.String("kind", string(j.kind)),
			zap.Uint32("id", j.id),
			zap.String("status", status),
			zap.String("reason", reason),
		)
	}

	if claimed.Cmp(total) > 0 {
		flag("claimed exceeds total")
	}
	if !terminal && claimed.Cmp(accrued) > 0 {
		flag("claimed exceeds accrual")
	}

	claims, err := s.repo.ClaimsBySchedule(ctx, j.kind, j.id)
	if err != nil {
		return nil, 0, fmt.Errorf("load claims for %s %d: %w", j.kind, j.id, err)
	}
	claimSum := big.NewInt(0)
	for _, claim := range claims {
		claimSum.Add(claimSum, claim.Amount)
	}
	if claimSum.Cmp(claimed) != 0 {
		flag("claim history does not match claimed total")
	}

	owed := map[model.Token]*big.Int{}
	if !terminal {
		owed[token] = new(big.Int).Sub(total, claimed)
	}
	return owed, violations, nil
}

// auditEscrow checks that the escrow balance of every token covers the
// summed outstanding obligations of all active schedules.
func (s *Service) auditEscrow(ctx context.Context, outstanding map[model.Token]*big.Int) (int, error) {
	violations := 0
	for token, owed := range outstanding {
		balance, err := s.repo.TokenBalance(ctx, token, model.EscrowAccount)
		if err != nil {
			return 0, fmt.Errorf("load escrow balance for %s: %w", token, err)
		}
		if balance.Cmp(owed) < 0 {
			violations++
			s.logger.Warn("escrow underfunded",
				zap.String("token", string(token)),
				zap.String("balance", balance.String()),
				zap.String("outstanding", owed.String()),
			)
		}
	}
	return violations, nil
}
