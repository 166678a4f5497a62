package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/shared/auth"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
	ActorID   uint
	ActorRole string
}

type DeleteRequestResult struct {
	RequestID uint
}

// TransactionRunner runs a function inside one database transaction; the
// handle travels through the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteRequestUseCase struct {
	requestRepo    request.Repository
	eventRepo      request.EventRepository
	assigneeRepo   request.AssigneeRepository
	subRepo        request.SubscriptionRepository
	attachmentRepo request.AttachmentRepository
	fileStore      FileStore
	txRunner       TransactionRunner
	logger         logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	assigneeRepo request.AssigneeRepository,
	subRepo request.SubscriptionRepository,
	attachmentRepo request.AttachmentRepository,
	fileStore FileStore,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		assigneeRepo:   assigneeRepo,
		subRepo:        subRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txRunner:       txRunner,
		logger:         logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error) {
	uc.logger.Infow("executing delete request use case", "request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if !auth.CanDeleteRequest(cmd.ActorID, req.CreatorID(), cmd.ActorRole) {
		return nil, errors.NewForbiddenError("only the creator, an admin, or a coordinator may delete a request")
	}

	attachments, err := uc.attachmentRepo.FindByRequestID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	// All rows go in one transaction: events, assignee rows, subscriptions,
	// attachment rows, then the request itself.
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eventRepo.DeleteByRequestID(txCtx, cmd.RequestID); err != nil {
			return err
		}
		if err := uc.assigneeRepo.DeleteByRequestID(txCtx, cmd.RequestID); err != nil {
			return err
		}
		if err := uc.subRepo.DeleteByRequestID(txCtx, cmd.RequestID); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByRequestID(txCtx, cmd.RequestID); err != nil {
			return err
		}
		return uc.requestRepo.Delete(txCtx, cmd.RequestID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to delete request")
	}

	// Backing files go after the commit, best-effort. A leftover file is a
	// cleanup concern, not a failed delete.
	for _, att := range attachments {
		if err := uc.fileStore.Remove(att.URL()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "request_id", cmd.RequestID, "url", att.URL(), "error", err)
		}
	}

	uc.logger.Infow("request deleted", "request_id", cmd.RequestID)

	return &DeleteRequestResult{RequestID: cmd.RequestID}, nil
}
