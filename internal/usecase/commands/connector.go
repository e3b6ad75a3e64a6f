package commands

import (
	"context"
	"log/slog"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/pkg/clock"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
	"github.com/Pruthvi98/klaw/internal/usecase"

	"github.com/google/uuid"
)

type CreateConnectorInput struct {
	Environment     string
	ConnectorName   string
	ConnectorConfig string
	Description     string
}

type ConnectorCommands interface {
	CreateConnectorRequest(ctx context.Context, actor usecase.ActorContext, input CreateConnectorInput) (*CreateRequestResult, error)
	ApproveRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID) error
	DeclineRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID, reason string) error
}

type connectorUseCaseImpl struct {
	authorizer    Authorizer
	connectorRepo ConnectorRepository
	notifier      Notifier
	executor      ConnectorExecutor
	clock         clock.Clock
	loginURL      string
}

func NewConnectorUseCase(
	authorizer Authorizer,
	connectorRepo ConnectorRepository,
	notifier Notifier,
	executor ConnectorExecutor,
	clk clock.Clock,
	loginURL string,
) ConnectorCommands {
	return &connectorUseCaseImpl{
		authorizer:    authorizer,
		connectorRepo: connectorRepo,
		notifier:      notifier,
		executor:      executor,
		clock:         clk,
		loginURL:      loginURL,
	}
}

func (uc *connectorUseCaseImpl) CreateConnectorRequest(
	ctx context.Context,
	actor usecase.ActorContext,
	input CreateConnectorInput,
) (*CreateRequestResult, error) {
	if err := uc.authorizer.Require(actor.Role, auth.PermRequestCreateConnectors); err != nil {
		return nil, err
	}

	req, err := connector.NewRequest(
		actor.Username,
		actor.TeamID,
		actor.TenantID,
		input.Environment,
		input.ConnectorName,
		input.ConnectorConfig,
		input.Description,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	duplicate, err := uc.connectorRepo.HasPendingDuplicate(ctx, actor.Username, input.Environment, input.ConnectorName, actor.TenantID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if duplicate {
		return nil, ErrDuplicateRequest
	}

	if err := uc.connectorRepo.Insert(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRequest
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	uc.notify(ctx, Notification{
		Topic:     req.ConnectorName(),
		Body:      "Connector : " + req.ConnectorName(),
		Requestor: req.Requestor(),
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyConnectorRequested,
		LoginURL:  uc.loginURL,
	})

	return &CreateRequestResult{RequestID: req.ID()}, nil
}

func (uc *connectorUseCaseImpl) ApproveRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID) error {
	if err := uc.authorizer.Require(actor.Role, auth.PermApproveConnectors); err != nil {
		return err
	}

	req, err := uc.load(ctx, id, actor.TenantID)
	if err != nil {
		return err
	}
	if err := req.Approve(actor.Username); err != nil {
		return err
	}

	if err := uc.executor.CreateConnector(ctx, req.ConnectorName(), req.ConnectorConfig(), req.Environment(), req.TenantID()); err != nil {
		slog.Error("connector creation failed",
			"request_id", id, "connector", req.ConnectorName(), "error", err)
		return ErrExecutionFailed
	}

	if err := uc.connectorRepo.UpdateStatus(ctx, id, actor.TenantID, request.StatusCreated, request.StatusApproved, actor.Username); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return request.ErrAlreadyDecided
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	uc.notify(ctx, Notification{
		Topic:     req.ConnectorName(),
		Body:      "Connector : " + req.ConnectorName(),
		Requestor: req.Requestor(),
		Approver:  actor.Username,
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyConnectorApproved,
		LoginURL:  uc.loginURL,
	})

	return nil
}

func (uc *connectorUseCaseImpl) DeclineRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID, reason string) error {
	if err := uc.authorizer.Require(actor.Role, auth.PermApproveConnectors); err != nil {
		return err
	}

	req, err := uc.load(ctx, id, actor.TenantID)
	if err != nil {
		return err
	}
	if err := req.Decline(actor.Username); err != nil {
		return err
	}

	if err := uc.connectorRepo.UpdateStatus(ctx, id, actor.TenantID, request.StatusCreated, request.StatusDeclined, actor.Username); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return request.ErrAlreadyDecided
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	body := "Connector : " + req.ConnectorName()
	if reason != "" {
		body += "\nReason : " + reason
	}
	uc.notify(ctx, Notification{
		Topic:     req.ConnectorName(),
		Body:      body,
		Requestor: req.Requestor(),
		Approver:  actor.Username,
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyConnectorDeclined,
		LoginURL:  uc.loginURL,
	})

	return nil
}

func (uc *connectorUseCaseImpl) load(ctx context.Context, id uuid.UUID, tenantID int32) (*connector.Request, error) {
	req, err := uc.connectorRepo.FindByID(ctx, id, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return req, nil
}

func (uc *connectorUseCaseImpl) notify(ctx context.Context, n Notification) {
	if err := uc.notifier.Notify(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"kind", string(n.Kind), "topic", n.Topic, "error", err)
	}
}
