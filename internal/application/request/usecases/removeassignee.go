package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type RemoveAssigneeCommand struct {
	RequestID uint
	UserID    uint
	ActorID   uint
}

type RemoveAssigneeResult struct {
	RequestID uint
	Status    string
}

type RemoveAssigneeUseCase struct {
	requestRepo  request.Repository
	eventRepo    request.EventRepository
	assigneeRepo request.AssigneeRepository
	logger       logger.Interface
}

func NewRemoveAssigneeUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	assigneeRepo request.AssigneeRepository,
	logger logger.Interface,
) *RemoveAssigneeUseCase {
	return &RemoveAssigneeUseCase{
		requestRepo:  requestRepo,
		eventRepo:    eventRepo,
		assigneeRepo: assigneeRepo,
		logger:       logger,
	}
}

func (uc *RemoveAssigneeUseCase) Execute(ctx context.Context, cmd RemoveAssigneeCommand) (*RemoveAssigneeResult, error) {
	uc.logger.Infow("executing remove assignee use case", "request_id", cmd.RequestID, "user_id", cmd.UserID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := uc.assigneeRepo.Remove(ctx, cmd.RequestID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to remove assignee", "request_id", cmd.RequestID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	// Removing the user behind the legacy field clears it; status is never
	// demoted.
	if req.AssigneeID() != nil && *req.AssigneeID() == cmd.UserID {
		req.SetLegacyAssignee(nil)
		if err := uc.requestRepo.Update(ctx, req); err != nil {
			uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
			return nil, err
		}
	}

	if ev, err := request.NewAssigneeRemovedEvent(cmd.RequestID, cmd.ActorID, request.AssigneeRemovedPayload{UserID: cmd.UserID}); err == nil {
		if err := uc.eventRepo.Save(ctx, ev); err != nil {
			uc.logger.Warnw("failed to append assignee_removed event", "request_id", cmd.RequestID, "error", err)
		}
	}

	return &RemoveAssigneeResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
	}, nil
}
