package clickhouse

import (
	"math/big"
	"time"

	"github.com/lumendao/treasury-backend/internal/model"
)

func (s *RepositorySuite) TestInsertStreamsAndLoad() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	streams := []model.Stream{
		newStream(0, 10000, 0, model.StreamActive, now),
		newStream(1, 25000, 0, model.StreamActive, now),
	}

	s.Require().NoError(s.repo.InsertStreams(s.testCtx, streams))
	s.Equal(uint64(2), s.countRows("streams"))

	got, found, err := s.repo.StreamByID(s.testCtx, 1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.Account("alice"), got.Sender)
	s.Equal(model.Account("bob"), got.Recipient)
	s.Zero(got.TotalAmount.Cmp(big.NewInt(25000)))
	s.Zero(got.ClaimedAmount.Sign())
	s.Equal(model.StreamActive, got.Status)
}

func (s *RepositorySuite) TestStreamByIDMissing() {
	_, found, err := s.repo.StreamByID(s.testCtx, 42)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestReplaceStreamKeepsLatestVersion() {
	created := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.repo.InsertStreams(s.testCtx, []model.Stream{
		newStream(3, 10000, 0, model.StreamActive, created),
	}))

	updated := newStream(3, 10000, 10000, model.StreamCompleted, created.Add(time.Second))
	updated.LastClaimTime = 2000
	s.Require().NoError(s.repo.ReplaceStream(s.testCtx, updated))

	got, found, err := s.repo.StreamByID(s.testCtx, 3)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.StreamCompleted, got.Status)
	s.Zero(got.ClaimedAmount.Cmp(big.NewInt(10000)))
	s.Equal(uint64(2000), got.LastClaimTime)
}

func (s *RepositorySuite) TestMaxStreamID() {
	_, found, err := s.repo.MaxStreamID(s.testCtx)
	s.Require().NoError(err)
	s.False(found)

	now := time.Now().UTC()
	s.Require().NoError(s.repo.InsertStreams(s.testCtx, []model.Stream{
		newStream(0, 1, 0, model.StreamActive, now),
		newStream(7, 1, 0, model.StreamActive, now),
	}))

	id, found, err := s.repo.MaxStreamID(s.testCtx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(uint32(7), id)
}

func (s *RepositorySuite) TestModuleAdminRoundTrip() {
	_, found, err := s.repo.ModuleAdmin(s.testCtx, "payroll_stream")
	s.Require().NoError(err)
	s.False(found)

	s.Require().NoError(s.repo.SetModuleAdmin(s.testCtx, "payroll_stream", "org"))

	admin, found, err := s.repo.ModuleAdmin(s.testCtx, "payroll_stream")
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.Account("org"), admin)

	// A later row replaces the earlier one.
	s.Require().NoError(s.repo.SetModuleAdmin(s.testCtx, "payroll_stream", "org2"))
	admin, found, err = s.repo.ModuleAdmin(s.testCtx, "payroll_stream")
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(model.Account("org2"), admin)
}
