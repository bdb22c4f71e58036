package service

import (
	"context"
	"math/big"

	"github.com/lumendao/treasury-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StreamRepository persists payroll streams, their claim history and
	// the account index. Every record mutation is a full-record replace.
	StreamRepository interface {
		ModuleAdmin(ctx context.Context, module string) (model.Account, bool, error)
		SetModuleAdmin(ctx context.Context, module string, admin model.Account) error
		StreamByID(ctx context.Context, id uint32) (model.Stream, bool, error)
		ReplaceStream(ctx context.Context, stream model.Stream) error
		InsertStreams(ctx context.Context, streams []model.Stream) error
		MaxStreamID(ctx context.Context) (uint32, bool, error)
		InsertIndexEntries(ctx context.Context, entries []model.IndexEntry) error
		ScheduleIDs(ctx context.Context, kind model.ScheduleKind, account model.Account, role model.Role) ([]uint32, error)
		InsertClaims(ctx context.Context, claims []model.Claim) error
		ClaimsBySchedule(ctx context.Context, kind model.ScheduleKind, id uint32) ([]model.Claim, error)
	}

	// VestingRepository persists vesting schedules, their claim history and
	// the account index.
	VestingRepository interface {
		ModuleAdmin(ctx context.Context, module string) (model.Account, bool, error)
		SetModuleAdmin(ctx context.Context, module string, admin model.Account) error
		VestingScheduleByID(ctx context.Context, id uint32) (model.VestingSchedule, bool, error)
		ReplaceVestingSchedule(ctx context.Context, schedule model.VestingSchedule) error
		InsertVestingSchedules(ctx context.Context, schedules []model.VestingSchedule) error
		MaxVestingScheduleID(ctx context.Context) (uint32, bool, error)
		InsertIndexEntries(ctx context.Context, entries []model.IndexEntry) error
		ScheduleIDs(ctx context.Context, kind model.ScheduleKind, account model.Account, role model.Role) ([]uint32, error)
		InsertClaims(ctx context.Context, claims []model.Claim) error
		ClaimsBySchedule(ctx context.Context, kind model.ScheduleKind, id uint32) ([]model.Claim, error)
	}

	// TreasuryRepository persists the signer configuration and withdrawal
	// requests.
	TreasuryRepository interface {
		TreasuryState(ctx context.Context) (model.TreasuryState, bool, error)
		ReplaceTreasuryState(ctx context.Context, state model.TreasuryState) error
		WithdrawalByID(ctx context.Context, id uint32) (model.WithdrawalRequest, bool, error)
		ReplaceWithdrawal(ctx context.Context, request model.WithdrawalRequest) error
		InsertWithdrawals(ctx context.Context, requests []model.WithdrawalRequest) error
		MaxWithdrawalID(ctx context.Context) (uint32, bool, error)
	}

	// GovernanceRepository persists the DAO configuration and proposals.
	GovernanceRepository interface {
		GovernanceState(ctx context.Context) (model.GovernanceState, bool, error)
		ReplaceGovernanceState(ctx context.Context, state model.GovernanceState) error
		ProposalByID(ctx context.Context, id uint32) (model.Proposal, bool, error)
		ReplaceProposal(ctx context.Context, proposal model.Proposal) error
		InsertProposals(ctx context.Context, proposals []model.Proposal) error
		MaxProposalID(ctx context.Context) (uint32, bool, error)
	}

	// Authorizer verifies that the current call carries a valid capability
	// for the named account. Injected so tests can substitute a mock.
	Authorizer interface {
		Require(ctx context.Context, account model.Account) error
	}

	// TokenMover executes a value transfer. A move either succeeds entirely
	// or fails entirely.
	TokenMover interface {
		Move(ctx context.Context, transfer model.Transfer) error
		Balance(ctx context.Context, token model.Token, account model.Account) (*big.Int, error)
	}

	// Emitter publishes a domain event. Emission failures are logged but
	// never roll back a committed operation.
	Emitter interface {
		Emit(ctx context.Context, event model.Event) error
	}
)
