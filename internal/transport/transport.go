// Package transport exposes the treasury services over HTTP.
package transport

import (
	"context"
	"math/big"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StreamService captures the stream operations the handlers need.
	StreamService interface {
		Initialize(ctx context.Context, admin model.Account) error
		CreateStream(ctx context.Context, sender, recipient model.Account, token model.Token, totalAmount *big.Int, startTime, endTime uint64) (uint32, error)
		CreateStreamBatch(ctx context.Context, sender model.Account, entries []model.CreateStreamParams) ([]uint32, error)
		Claim(ctx context.Context, recipient model.Account, id uint32) (*big.Int, error)
		Cancel(ctx context.Context, sender model.Account, id uint32) (*big.Int, error)
		Stream(ctx context.Context, id uint32) (model.Stream, error)
		Claimable(ctx context.Context, id uint32) (*big.Int, error)
		Progress(ctx context.Context, id uint32) (model.Progress, error)
		StreamsBySender(ctx context.Context, sender model.Account) ([]uint32, error)
		StreamsByRecipient(ctx context.Context, recipient model.Account) ([]uint32, error)
		ClaimHistory(ctx context.Context, id uint32) ([]model.Claim, error)
		Admin(ctx context.Context) (model.Account, error)
	}

	// VestingService captures the vesting operations the handlers need.
	VestingService interface {
		Initialize(ctx context.Context, admin model.Account) error
		CreateSchedule(ctx context.Context, grantor, beneficiary model.Account, token model.Token, totalAmount *big.Int, startTime, cliffDuration uint64, cliffAmount *big.Int, totalDuration uint64, label string, revocable bool) (uint32, error)
		Claim(ctx context.Context, beneficiary model.Account, id uint32) (*big.Int, error)
		Revoke(ctx context.Context, grantor model.Account, id uint32) (*big.Int, error)
		Schedule(ctx context.Context, id uint32) (model.VestingSchedule, error)
		Progress(ctx context.Context, id uint32) (model.Progress, error)
		SchedulesByGrantor(ctx context.Context, grantor model.Account) ([]uint32, error)
		SchedulesByBeneficiary(ctx context.Context, beneficiary model.Account) ([]uint32, error)
		ClaimHistory(ctx context.Context, id uint32) ([]model.Claim, error)
		Admin(ctx context.Context) (model.Account, error)
	}

	// TreasuryService captures the multisig operations the handlers need.
	TreasuryService interface {
		Initialize(ctx context.Context, admin model.Account, signers []model.Account, threshold uint32) error
		Deposit(ctx context.Context, from model.Account, token model.Token, amount *big.Int) error
		CreateWithdrawal(ctx context.Context, proposer model.Account, token model.Token, recipient model.Account, amount *big.Int, memo string) (uint32, error)
		Approve(ctx context.Context, signer model.Account, id uint32) error
		Execute(ctx context.Context, executor model.Account, id uint32) error
		AddSigner(ctx context.Context, admin, newSigner model.Account) error
		RemoveSigner(ctx context.Context, admin, signer model.Account) error
		UpdateThreshold(ctx context.Context, admin model.Account, threshold uint32) error
		Withdrawal(ctx context.Context, id uint32) (model.WithdrawalRequest, error)
		Config(ctx context.Context) (model.TreasuryConfig, error)
	}

	// GovernanceService captures the DAO operations the handlers need.
	GovernanceService interface {
		Initialize(ctx context.Context, admin model.Account, members []model.Account, quorumPercentage uint32, votingDuration, gracePeriod uint64) error
		CreateProposal(ctx context.Context, proposer model.Account, title string, token model.Token, amount *big.Int, recipient model.Account) (uint32, error)
		Vote(ctx context.Context, voter model.Account, id uint32, choice model.VoteChoice) error
		Finalize(ctx context.Context, caller model.Account, id uint32) (model.ProposalStatus, error)
		Execute(ctx context.Context, admin model.Account, id uint32) error
		Cancel(ctx context.Context, proposer model.Account, id uint32) error
		Expire(ctx context.Context, caller model.Account, id uint32) error
		AddMember(ctx context.Context, admin, newMember model.Account) error
		RemoveMember(ctx context.Context, admin, member model.Account) error
		Proposal(ctx context.Context, id uint32) (model.Proposal, error)
		Config(ctx context.Context) (model.GovernanceConfig, error)
	}

	// Metrics records handled requests.
	Metrics interface {
		Observe(method, route string, code int, started time.Time)
	}
)

// Router builds the gin engine with all treasury routes mounted.
func Router(
	logger *zap.Logger,
	metrics Metrics,
	streams StreamService,
	vesting VestingService,
	treasury TreasuryService,
	governance GovernanceService,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Credentials(), Logging(logger), Observe(metrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")
	NewStreamHandler(streams).Register(v1)
	NewVestingHandler(vesting).Register(v1)
	NewTreasuryHandler(treasury).Register(v1)
	NewGovernanceHandler(governance).Register(v1)

	return router
}
