package clickhouse

import (
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

func (s *RepositorySuite) TestTreasuryStateRoundTrip() {
	_, found, err := s.repo.TreasuryState(s.testCtx)
	s.Require().NoError(err)
	s.False(found)

	now := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.repo.ReplaceTreasuryState(s.testCtx, model.TreasuryState{
		Admin:     "admin",
		Signers:   []model.Account{"s1", "s2", "s3"},
		Threshold: 2,
		UpdatedAt: now,
	}))

	state, found, err := s.repo.TreasuryState(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.Account("admin"), state.Admin)
	s.Equal([]model.Account{"s1", "s2", "s3"}, state.Signers)
	s.Equal(uint32(2), state.Threshold)

	// Replacing keeps only the newest configuration.
	s.Require().NoError(s.repo.ReplaceTreasuryState(s.testCtx, model.TreasuryState{
		Admin:     "admin",
		Signers:   []model.Account{"s1", "s2", "s3", "s4"},
		Threshold: 3,
		UpdatedAt: now.Add(time.Second),
	}))

	state, found, err = s.repo.TreasuryState(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Len(state.Signers, 4)
	s.Equal(uint32(3), state.Threshold)
}

func (s *RepositorySuite) TestWithdrawalRoundTrip() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	request := model.WithdrawalRequest{
		ID:        0,
		Proposer:  "s1",
		Token:     "XLM",
		Recipient: "vendor",
		Amount:    big.NewInt(7500),
		Memo:      "invoice 118",
		Approvals: []model.Account{"s1"},
		Status:    model.WithdrawalPending,
		CreatedAt: 1000,
		UpdatedAt: now,
	}
	s.Require().NoError(s.repo.InsertWithdrawals(s.testCtx, []model.WithdrawalRequest{request}))

	got, found, err := s.repo.WithdrawalByID(s.testCtx, 0)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.Account("s1"), got.Proposer)
	s.Equal("invoice 118", got.Memo)
	s.Equal([]model.Account{"s1"}, got.Approvals)
	s.Zero(got.Amount.Cmp(big.NewInt(7500)))
	s.Equal(model.WithdrawalPending, got.Status)

	request.Approvals = append(request.Approvals, "s2")
	request.Status = model.WithdrawalApproved
	request.UpdatedAt = now.Add(time.Second)
	s.Require().NoError(s.repo.ReplaceWithdrawal(s.testCtx, request))

	got, found, err = s.repo.WithdrawalByID(s.testCtx, 0)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal([]model.Account{"s1", "s2"}, got.Approvals)
	s.Equal(model.WithdrawalApproved, got.Status)
}

func (s *RepositorySuite) TestMaxWithdrawalID() {
	_, found, err := s.repo.MaxWithdrawalID(s.testCtx)
	s.Require().NoError(err)
	s.False(found)

	now := time.Now().UTC()
	s.Require().NoError(s.repo.InsertWithdrawals(s.testCtx, []model.WithdrawalRequest{
		{ID: 3, Proposer: "s1", Token: "XLM", Recipient: "r", Amount: big.NewInt(1), Approvals: []model.Account{"s1"}, Status: model.WithdrawalPending, CreatedAt: 1, UpdatedAt: now},
	}))

	id, found, err := s.repo.MaxWithdrawalID(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(uint32(3), id)
}
