package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
	"github.com/Pruthvi98/klaw/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrTargetNotAccessible = errs.New("team does not own an approved acl for this consumer group")
	ErrDuplicateRequest    = errs.New("a pending request already exists for these coordinates")
	ErrRequestNotFound     = errs.New("request not found")
	ErrExecutionFailed     = errs.New("cluster operation failed")
	ErrStoreFailure        = errs.New("request store operation failed")
)

type CreateOffsetResetInput struct {
	Environment       string
	TopicName         string
	ConsumerGroup     string
	OffsetResetType   request.OffsetResetType
	ResetTimestampStr string
	Remarks           string
}

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type OperationalCommands interface {
	CreateOffsetResetRequest(ctx context.Context, actor usecase.ActorContext, input CreateOffsetResetInput) (*CreateRequestResult, error)
	ApproveRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID) error
	DeclineRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID, reason string) error
}

type operationalUseCaseImpl struct {
	authorizer  Authorizer
	requestRepo RequestRepository
	aclReads    AclReadStore
	notifier    Notifier
	executor    OffsetResetExecutor
	factory     *request.Factory
	loginURL    string
}

func NewOperationalUseCase(
	authorizer Authorizer,
	requestRepo RequestRepository,
	aclReads AclReadStore,
	notifier Notifier,
	executor OffsetResetExecutor,
	factory *request.Factory,
	loginURL string,
) OperationalCommands {
	return &operationalUseCaseImpl{
		authorizer:  authorizer,
		requestRepo: requestRepo,
		aclReads:    aclReads,
		notifier:    notifier,
		executor:    executor,
		factory:     factory,
		loginURL:    loginURL,
	}
}

func (uc *operationalUseCaseImpl) CreateOffsetResetRequest(
	ctx context.Context,
	actor usecase.ActorContext,
	input CreateOffsetResetInput,
) (*CreateRequestResult, error) {
	// Authorization comes first: an unauthorized call must have zero side
	// effects, so no collaborator is touched before this check.
	if err := uc.authorizer.Require(actor.Role, auth.PermRequestCreateSubscriptions); err != nil {
		return nil, err
	}

	if err := uc.validateTargetOwnership(ctx, actor, input); err != nil {
		return nil, err
	}

	req, err := uc.factory.NewOffsetResetRequest(
		actor.Username,
		actor.TeamID,
		actor.TenantID,
		input.Environment,
		input.TopicName,
		input.ConsumerGroup,
		input.OffsetResetType,
		input.ResetTimestampStr,
		input.Remarks,
	)
	if err != nil {
		return nil, err
	}

	duplicate, err := uc.requestRepo.HasPendingDuplicate(ctx, DuplicateKey{
		Requestor:     actor.Username,
		RequestType:   request.TypeResetConsumerOffsets,
		Environment:   input.Environment,
		TopicName:     input.TopicName,
		ConsumerGroup: input.ConsumerGroup,
		TenantID:      actor.TenantID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if duplicate {
		return nil, ErrDuplicateRequest
	}

	if err := uc.requestRepo.Insert(ctx, req); err != nil {
		// The store's partial unique index backs up the pre-check under
		// concurrent creations for the same coordinates.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRequest
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	uc.notify(ctx, Notification{
		Topic:     req.TopicName(),
		Body:      "Consumer group : " + req.ConsumerGroup(),
		Requestor: req.Requestor(),
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyOffsetResetRequested,
		LoginURL:  uc.loginURL,
	})

	return &CreateRequestResult{RequestID: req.ID()}, nil
}

// validateTargetOwnership confirms the requesting team holds an approved
// access grant for the consumer group. A missing consumer group
// short-circuits: it is a required field for this request type.
func (uc *operationalUseCaseImpl) validateTargetOwnership(
	ctx context.Context,
	actor usecase.ActorContext,
	input CreateOffsetResetInput,
) error {
	if input.ConsumerGroup == "" {
		return ErrTargetNotAccessible
	}

	owned, err := uc.aclReads.HasApprovedConsumerAcl(
		ctx,
		input.Environment,
		input.TopicName,
		actor.TeamID,
		input.ConsumerGroup,
		actor.TenantID,
	)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if !owned {
		return ErrTargetNotAccessible
	}
	return nil
}

func (uc *operationalUseCaseImpl) ApproveRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID) error {
	// Fail closed before any lookup.
	if err := uc.authorizer.Require(actor.Role, auth.PermApproveOperationalRequests); err != nil {
		return err
	}

	req, err := uc.loadPending(ctx, id, actor.TenantID)
	if err != nil {
		return err
	}
	if err := req.Approve(actor.Username); err != nil {
		return err
	}

	outcome, err := uc.executor.Execute(ctx, OffsetResetParams{
		TopicName:     req.TopicName(),
		ConsumerGroup: req.ConsumerGroup(),
		ResetType:     req.OffsetResetType(),
		Timestamp:     req.ResetTimestamp(),
	}, req.Environment(), req.TenantID())
	if err != nil {
		// Remote failures are normalized: the caller sees a single failure
		// signal, the cause stays in the logs.
		slog.Error("offset reset execution failed",
			"request_id", id, "environment", req.Environment(), "error", err)
		return ErrExecutionFailed
	}

	if err := uc.requestRepo.UpdateStatus(ctx, id, actor.TenantID, request.StatusCreated, request.StatusApproved, actor.Username); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return request.ErrAlreadyDecided
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	uc.notify(ctx, Notification{
		Topic:     req.TopicName(),
		Body:      formatResetOutcome(req.ConsumerGroup(), outcome),
		Requestor: req.Requestor(),
		Approver:  actor.Username,
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyOffsetResetApproved,
		LoginURL:  uc.loginURL,
	})

	return nil
}

func (uc *operationalUseCaseImpl) DeclineRequest(ctx context.Context, actor usecase.ActorContext, id uuid.UUID, reason string) error {
	if err := uc.authorizer.Require(actor.Role, auth.PermApproveOperationalRequests); err != nil {
		return err
	}

	req, err := uc.loadPending(ctx, id, actor.TenantID)
	if err != nil {
		return err
	}
	if err := req.Decline(actor.Username); err != nil {
		return err
	}

	if err := uc.requestRepo.UpdateStatus(ctx, id, actor.TenantID, request.StatusCreated, request.StatusDeclined, actor.Username); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return request.ErrAlreadyDecided
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	body := "Consumer group : " + req.ConsumerGroup()
	if reason != "" {
		body += "\nReason : " + reason
	}
	uc.notify(ctx, Notification{
		Topic:     req.TopicName(),
		Body:      body,
		Requestor: req.Requestor(),
		Approver:  actor.Username,
		TeamID:    req.RequestingTeamID(),
		TenantID:  req.TenantID(),
		Kind:      NotifyOffsetResetDeclined,
		LoginURL:  uc.loginURL,
	})

	return nil
}

func (uc *operationalUseCaseImpl) loadPending(ctx context.Context, id uuid.UUID, tenantID int32) (*request.OffsetResetRequest, error) {
	req, err := uc.requestRepo.FindByID(ctx, id, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return req, nil
}

func (uc *operationalUseCaseImpl) notify(ctx context.Context, n Notification) {
	if err := uc.notifier.Notify(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"kind", string(n.Kind), "topic", n.Topic, "error", err)
	}
}

// formatResetOutcome renders the pre- and post-reset offset positions into
// the approval notification body.
func formatResetOutcome(consumerGroup string, outcome *ResetOutcome) string {
	var b strings.Builder
	b.WriteString(consumerGroup)
	if outcome == nil {
		return b.String()
	}
	if outcome.Before != nil {
		b.WriteString("\n\nBefore Offset Reset\n")
		b.WriteString(formatOffsets(outcome.Before))
	}
	if outcome.After != nil {
		b.WriteString("\n\nAfter Offset Reset\n")
		b.WriteString(formatOffsets(outcome.After))
	}
	return b.String()
}

func formatOffsets(offsets map[string]int64) string {
	keys := make([]string, 0, len(offsets))
	for k := range offsets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s : %d", k, offsets[k]))
	}
	return strings.Join(lines, "\n")
}
