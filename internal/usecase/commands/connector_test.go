//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/pkg/clock"
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/tests/common/builder"
	commandsmock "github.com/Pruthvi98/klaw/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConnectorCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockAuth     *commandsmock.MockAuthorizer
	mockRepo     *commandsmock.MockConnectorRepository
	mockNotifier *commandsmock.MockNotifier
	mockExecutor *commandsmock.MockConnectorExecutor
	uc           commands.ConnectorCommands

	actor    usecase.ActorContext
	approver usecase.ActorContext
}

func (s *ConnectorCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthorizer(s.mockCtrl)
	s.mockRepo = commandsmock.NewMockConnectorRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.mockExecutor = commandsmock.NewMockConnectorExecutor(s.mockCtrl)

	clk := clock.NewMockClock(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewConnectorUseCase(
		s.mockAuth, s.mockRepo, s.mockNotifier, s.mockExecutor,
		clk, "http://localhost:3000/login",
	)

	s.actor = builder.NewUserBuilder().BuildActor()
	s.approver = builder.NewUserBuilder().WithUsername("bob").WithRole("approver").BuildActor()
}

func (s *ConnectorCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConnectorCommandsSuite(t *testing.T) {
	suite.Run(t, new(ConnectorCommandsTestSuite))
}

func (s *ConnectorCommandsTestSuite) TestCreateConnectorRequest() {
	ctx := context.Background()
	input := builder.NewConnectorBuilder().BuildInput()

	s.Run("success: persists the request and notifies", func() {
		s.mockAuth.EXPECT().Require(s.actor.Role, auth.PermRequestCreateConnectors).Return(nil)
		s.mockRepo.EXPECT().HasPendingDuplicate(ctx, s.actor.Username, input.Environment, input.ConnectorName, s.actor.TenantID).
			Return(false, nil)
		s.mockRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req *connector.Request) error {
				s.Equal(request.StatusCreated, req.Status())
				s.Equal(input.ConnectorName, req.ConnectorName())
				s.Equal(s.actor.Username, req.Requestor())
				return nil
			})
		s.mockNotifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n commands.Notification) error {
				s.Equal(commands.NotifyConnectorRequested, n.Kind)
				s.Contains(n.Body, "Connector : "+input.ConnectorName)
				return nil
			})

		result, err := s.uc.CreateConnectorRequest(ctx, s.actor, input)
		s.NoError(err)
		s.NotNil(result)
	})

	s.Run("error: unauthorized actor touches no collaborator", func() {
		s.mockAuth.EXPECT().Require(s.actor.Role, auth.PermRequestCreateConnectors).
			Return(auth.ErrNotAuthorized)

		result, err := s.uc.CreateConnectorRequest(ctx, s.actor, input)
		s.ErrorIs(err, auth.ErrNotAuthorized)
		s.Nil(result)
	})

	s.Run("error: config that is not a JSON object", func() {
		s.mockAuth.EXPECT().Require(s.actor.Role, auth.PermRequestCreateConnectors).Return(nil)

		bad := input
		bad.ConnectorConfig = `["not","an","object"]`
		result, err := s.uc.CreateConnectorRequest(ctx, s.actor, bad)
		s.ErrorIs(err, connector.ErrInvalidConfig)
		s.Nil(result)
	})

	s.Run("error: a pending duplicate blocks creation", func() {
		s.mockAuth.EXPECT().Require(s.actor.Role, auth.PermRequestCreateConnectors).Return(nil)
		s.mockRepo.EXPECT().HasPendingDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		result, err := s.uc.CreateConnectorRequest(ctx, s.actor, input)
		s.ErrorIs(err, commands.ErrDuplicateRequest)
		s.Nil(result)
	})

	s.Run("error: concurrent duplicate surfaces through the unique index", func() {
		s.mockAuth.EXPECT().Require(s.actor.Role, auth.PermRequestCreateConnectors).Return(nil)
		s.mockRepo.EXPECT().HasPendingDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.mockRepo.EXPECT().Insert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("pending request already exists", nil, infra.KindDuplicateKey))

		result, err := s.uc.CreateConnectorRequest(ctx, s.actor, input)
		s.ErrorIs(err, commands.ErrDuplicateRequest)
		s.Nil(result)
	})
}

func (s *ConnectorCommandsTestSuite) TestApproveRequest() {
	ctx := context.Background()

	s.Run("success: creates the connector and persists approval", func() {
		pending := builder.NewConnectorBuilder().BuildDomain()

		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, pending.ID(), s.approver.TenantID).Return(pending, nil)
		s.mockExecutor.EXPECT().CreateConnector(ctx, pending.ConnectorName(), pending.ConnectorConfig(), pending.Environment(), pending.TenantID()).
			Return(nil)
		s.mockRepo.EXPECT().UpdateStatus(ctx, pending.ID(), s.approver.TenantID, request.StatusCreated, request.StatusApproved, s.approver.Username).
			Return(nil)
		s.mockNotifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n commands.Notification) error {
				s.Equal(commands.NotifyConnectorApproved, n.Kind)
				return nil
			})

		err := s.uc.ApproveRequest(ctx, s.approver, pending.ID())
		s.NoError(err)
	})

	s.Run("error: unknown request id", func() {
		id := uuid.New()
		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, id, s.approver.TenantID).
			Return(nil, infra.WrapRepoErr("connector request not found", nil, infra.KindNotFound))

		err := s.uc.ApproveRequest(ctx, s.approver, id)
		s.ErrorIs(err, commands.ErrRequestNotFound)
	})

	s.Run("error: requestor cannot approve their own request", func() {
		pending := builder.NewConnectorBuilder().WithRequestor(s.approver.Username).BuildDomain()

		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, pending.ID(), s.approver.TenantID).Return(pending, nil)

		err := s.uc.ApproveRequest(ctx, s.approver, pending.ID())
		s.ErrorIs(err, request.ErrSelfApprovalForbidden)
	})

	s.Run("error: gateway failure keeps the request pending", func() {
		pending := builder.NewConnectorBuilder().BuildDomain()

		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, pending.ID(), s.approver.TenantID).Return(pending, nil)
		s.mockExecutor.EXPECT().CreateConnector(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connect cluster unreachable"))

		err := s.uc.ApproveRequest(ctx, s.approver, pending.ID())
		s.ErrorIs(err, commands.ErrExecutionFailed)
	})
}

func (s *ConnectorCommandsTestSuite) TestDeclineRequest() {
	ctx := context.Background()

	s.Run("success: declines without calling the gateway", func() {
		pending := builder.NewConnectorBuilder().BuildDomain()

		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, pending.ID(), s.approver.TenantID).Return(pending, nil)
		s.mockRepo.EXPECT().UpdateStatus(ctx, pending.ID(), s.approver.TenantID, request.StatusCreated, request.StatusDeclined, s.approver.Username).
			Return(nil)
		s.mockNotifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n commands.Notification) error {
				s.Equal(commands.NotifyConnectorDeclined, n.Kind)
				s.Contains(n.Body, "Reason : config incomplete")
				return nil
			})

		err := s.uc.DeclineRequest(ctx, s.approver, pending.ID(), "config incomplete")
		s.NoError(err)
	})

	s.Run("error: approved request cannot be declined", func() {
		decided := builder.NewConnectorBuilder().WithStatus(request.StatusApproved).BuildDomain()

		s.mockAuth.EXPECT().Require(s.approver.Role, auth.PermApproveConnectors).Return(nil)
		s.mockRepo.EXPECT().FindByID(ctx, decided.ID(), s.approver.TenantID).Return(decided, nil)

		err := s.uc.DeclineRequest(ctx, s.approver, decided.ID(), "")
		s.ErrorIs(err, request.ErrAlreadyDecided)
	})
}
