//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
	"github.com/Pruthvi98/klaw/tests/common/builder"
	queriesmock "github.com/Pruthvi98/klaw/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OperationalQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReads     *queriesmock.MockRequestReadStore
	mockDirectory *queriesmock.MockDirectoryReadStore
	q             queries.OperationalQueries

	actor usecase.ActorContext
}

func (s *OperationalQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReads = queriesmock.NewMockRequestReadStore(s.mockCtrl)
	s.mockDirectory = queriesmock.NewMockDirectoryReadStore(s.mockCtrl)
	s.q = queries.NewOperationalQueries(s.mockReads, s.mockDirectory)
	s.actor = builder.NewUserBuilder().BuildActor()
}

func (s *OperationalQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOperationalQueriesSuite(t *testing.T) {
	suite.Run(t, new(OperationalQueriesTestSuite))
}

func (s *OperationalQueriesTestSuite) allowEnvs(envs ...string) {
	allowed := map[string]bool{}
	for _, e := range envs {
		allowed[e] = true
	}
	s.mockDirectory.EXPECT().AllowedEnvironments(gomock.Any(), s.actor.Username, s.actor.TenantID).
		Return(allowed, nil)
}

func (s *OperationalQueriesTestSuite) stubNames() {
	s.mockDirectory.EXPECT().EnvironmentName(gomock.Any(), gomock.Any(), s.actor.TenantID).
		Return("Development", nil).AnyTimes()
	s.mockDirectory.EXPECT().TeamName(gomock.Any(), gomock.Any(), s.actor.TenantID).
		Return("Payments", nil).AnyTimes()
	s.mockDirectory.EXPECT().TeamMembers(gomock.Any(), s.actor.TeamID, s.actor.TenantID).
		Return([]queries.TeamMember{
			{Username: "alice", Role: "approver"},
			{Username: "bob", Role: "approver"},
			{Username: "carol", Role: "user"},
		}, nil).AnyTimes()
}

func (s *OperationalQueriesTestSuite) TestList() {
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	s.Run("success: enriches names and marks self-service affordances", func() {
		rec := builder.NewRequestBuilder().WithRequestTime(base).BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 1)
		v := views[0]
		s.Equal("Development", v.EnvironmentName)
		s.Equal("Payments", v.TeamName)
		s.Equal(1, v.CurrentPage)
		s.Equal(1, v.TotalPages)
		s.Equal([]int{1}, v.AllPageNos)
		// requestor alice is pending on her own request
		s.True(v.Editable)
		s.True(v.Deletable)
		// alice never appears in her own approver list
		s.Equal("Team : Payments, Users : bob,", v.ApproverInfo)
	})

	s.Run("success: records outside visible environments are dropped", func() {
		dev := builder.NewRequestBuilder().WithEnvironment("DEV").BuildRecord()
		prd := builder.NewRequestBuilder().WithEnvironment("PRD").BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{dev, prd}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 1)
		s.Equal("DEV", views[0].Environment)
	})

	s.Run("success: directory failure yields an empty listing", func() {
		rec := builder.NewRequestBuilder().BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.mockDirectory.EXPECT().AllowedEnvironments(gomock.Any(), s.actor.Username, s.actor.TenantID).
			Return(nil, errors.New("directory unavailable"))

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Empty(views)
	})

	s.Run("success: user with no visible environments sees nothing", func() {
		rec := builder.NewRequestBuilder().BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.allowEnvs()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Empty(views)
	})

	s.Run("success: ordering follows the requested direction", func() {
		older := builder.NewRequestBuilder().WithRequestTime(base.Add(-time.Hour)).BuildRecord()
		newer := builder.NewRequestBuilder().WithRequestTime(base).BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{older, newer}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 2)
		s.Equal(newer.ID, views[0].ID)
		s.Equal(older.ID, views[1].ID)
	})

	s.Run("success: ascending order keeps insertion order for ties", func() {
		first := builder.NewRequestBuilder().WithRequestTime(base).BuildRecord()
		second := builder.NewRequestBuilder().WithRequestTime(base).BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{first, second}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderAscRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 2)
		s.Equal(first.ID, views[0].ID)
		s.Equal(second.ID, views[1].ID)
	})

	s.Run("success: pagination slices fixed pages and reports the page map", func() {
		records := make([]*queries.RequestRecord, 0, 23)
		for i := 0; i < 23; i++ {
			records = append(records, builder.NewRequestBuilder().
				WithRequestTime(base.Add(time.Duration(-i)*time.Minute)).BuildRecord())
		}

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return(records, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 3)
		s.NoError(err)
		s.Require().Len(views, 3)
		s.Equal(3, views[0].CurrentPage)
		s.Equal(3, views[0].TotalPages)
		s.Equal([]int{1, 2, 3}, views[0].AllPageNos)
	})

	s.Run("success: a page past the end is empty", func() {
		rec := builder.NewRequestBuilder().BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.allowEnvs("DEV")

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 2)
		s.NoError(err)
		s.Empty(views)
	})

	s.Run("success: decided requests are frozen", func() {
		rec := builder.NewRequestBuilder().WithStatus(request.StatusApproved).BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 1)
		s.False(views[0].Editable)
		s.False(views[0].Deletable)
		s.Empty(views[0].ApproverInfo)
	})

	s.Run("success: another user's pending request is read-only", func() {
		rec := builder.NewRequestBuilder().WithRequestor("bob").BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.RequestRecord{rec}, nil)
		s.allowEnvs("DEV")
		s.stubNames()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 1)
		s.False(views[0].Editable)
		s.False(views[0].Deletable)
	})

	s.Run("error: read store failure propagates", func() {
		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return(nil, errors.New("connection refused"))

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.Error(err)
		s.Nil(views)
	})
}
