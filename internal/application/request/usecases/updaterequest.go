package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/shared/biztime"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

// UpdateRequestCommand carries a partial overwrite. Pointer fields follow the
// patch convention: nil means the field was absent and stays untouched; a
// present pointer overwrites, with a blank AssigneeID/DueAt clearing.
type UpdateRequestCommand struct {
	RequestID  uint
	Status     *string
	Priority   *string
	DueAt      *string
	AssigneeID *string
	ActorID    uint
}

type UpdateRequestResult struct {
	RequestID uint
	Status    string
	Priority  string
	UpdatedAt time.Time
}

type UpdateRequestUseCase struct {
	requestRepo request.Repository
	eventRepo   request.EventRepository
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Status == nil && cmd.Priority == nil && cmd.DueAt == nil && cmd.AssigneeID == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := req.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := req.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.DueAt != nil {
		if strings.TrimSpace(*cmd.DueAt) == "" {
			req.SetDueAt(nil)
		} else {
			t, err := biztime.ParseDueAt(*cmd.DueAt)
			if err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			req.SetDueAt(&t)
		}
	}

	// Patching assigneeId rewrites the legacy single-assignee field only.
	// Multi-assignee membership and status promotion belong to the assign
	// operations; a present blank value clears.
	if cmd.AssigneeID != nil {
		if strings.TrimSpace(*cmd.AssigneeID) == "" {
			req.SetLegacyAssignee(nil)
		} else {
			id, err := strconv.ParseUint(strings.TrimSpace(*cmd.AssigneeID), 10, 64)
			if err != nil || id == 0 {
				return nil, errors.NewValidationError("invalid assignee ID")
			}
			uid := uint(id)
			req.SetLegacyAssignee(&uid)
		}
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.appendUpdatedEvent(ctx, cmd)

	return &UpdateRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		Priority:  req.Priority().String(),
		UpdatedAt: req.UpdatedAt(),
	}, nil
}

// appendUpdatedEvent records the raw patch as submitted, absent fields
// omitted. Append failures are logged, never surfaced.
func (uc *UpdateRequestUseCase) appendUpdatedEvent(ctx context.Context, cmd UpdateRequestCommand) {
	ev, err := request.NewUpdatedEvent(cmd.RequestID, cmd.ActorID, request.UpdatedPayload{
		Status:     cmd.Status,
		Priority:   cmd.Priority,
		DueAt:      cmd.DueAt,
		AssigneeID: cmd.AssigneeID,
	})
	if err != nil {
		uc.logger.Warnw("failed to build updated event", "request_id", cmd.RequestID, "error", err)
		return
	}
	if err := uc.eventRepo.Save(ctx, ev); err != nil {
		uc.logger.Warnw("failed to append updated event", "request_id", cmd.RequestID, "error", err)
	}
}
