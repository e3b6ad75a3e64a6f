//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
	"github.com/Pruthvi98/klaw/tests/common/builder"
	queriesmock "github.com/Pruthvi98/klaw/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConnectorQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReads     *queriesmock.MockConnectorReadStore
	mockDirectory *queriesmock.MockDirectoryReadStore
	q             queries.ConnectorQueries

	actor usecase.ActorContext
}

func (s *ConnectorQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReads = queriesmock.NewMockConnectorReadStore(s.mockCtrl)
	s.mockDirectory = queriesmock.NewMockDirectoryReadStore(s.mockCtrl)
	s.q = queries.NewConnectorQueries(s.mockReads, s.mockDirectory)
	s.actor = builder.NewUserBuilder().BuildActor()
}

func (s *ConnectorQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConnectorQueriesSuite(t *testing.T) {
	suite.Run(t, new(ConnectorQueriesTestSuite))
}

func (s *ConnectorQueriesTestSuite) TestList() {
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	s.Run("success: enriches and paginates connector requests", func() {
		rec := builder.NewConnectorBuilder().BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.ConnectorRecord{rec}, nil)
		s.mockDirectory.EXPECT().AllowedEnvironments(gomock.Any(), s.actor.Username, s.actor.TenantID).
			Return(map[string]bool{"DEV": true}, nil)
		s.mockDirectory.EXPECT().EnvironmentName(gomock.Any(), "DEV", s.actor.TenantID).
			Return("Development", nil)
		s.mockDirectory.EXPECT().TeamName(gomock.Any(), s.actor.TeamID, s.actor.TenantID).
			Return("Payments", nil)
		s.mockDirectory.EXPECT().TeamMembers(gomock.Any(), s.actor.TeamID, s.actor.TenantID).
			Return([]queries.TeamMember{{Username: "bob", Role: "approver"}}, nil)

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 1)
		v := views[0]
		s.Equal(rec.ConnectorName, v.ConnectorName)
		s.Equal("Development", v.EnvironmentName)
		s.Equal("Payments", v.TeamName)
		s.True(v.Editable)
		s.Equal("Team : Payments, Users : bob,", v.ApproverInfo)
	})

	s.Run("success: hidden environments are filtered out", func() {
		prd := builder.NewConnectorBuilder().WithEnvironment("PRD").BuildRecord()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.ConnectorRecord{prd}, nil)
		s.mockDirectory.EXPECT().AllowedEnvironments(gomock.Any(), s.actor.Username, s.actor.TenantID).
			Return(map[string]bool{"DEV": true}, nil)

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderDescRequestedTime, 1)
		s.NoError(err)
		s.Empty(views)
	})

	s.Run("success: ascending order by request time", func() {
		older := builder.NewConnectorBuilder().WithConnectorName("audit-sink")
		older.RequestTime = base.Add(-time.Hour)
		newer := builder.NewConnectorBuilder()

		s.mockReads.EXPECT().Search(ctx, s.actor.Username, gomock.Any(), s.actor.TenantID).
			Return([]*queries.ConnectorRecord{newer.BuildRecord(), older.BuildRecord()}, nil)
		s.mockDirectory.EXPECT().AllowedEnvironments(gomock.Any(), s.actor.Username, s.actor.TenantID).
			Return(map[string]bool{"DEV": true}, nil)
		s.mockDirectory.EXPECT().EnvironmentName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("Development", nil).AnyTimes()
		s.mockDirectory.EXPECT().TeamName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("Payments", nil).AnyTimes()
		s.mockDirectory.EXPECT().TeamMembers(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).AnyTimes()

		views, err := s.q.List(ctx, s.actor, queries.RequestFilter{}, queries.OrderAscRequestedTime, 1)
		s.NoError(err)
		s.Require().Len(views, 2)
		s.Equal("audit-sink", views[0].ConnectorName)
	})
}
