package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type AddAssigneesCommand struct {
	RequestID uint
	UserIDs   []uint
	ActorID   uint
}

type AddAssigneesResult struct {
	RequestID uint
	Status    string
	Added     []uint
}

type AddAssigneesUseCase struct {
	requestRepo  request.Repository
	eventRepo    request.EventRepository
	assigneeRepo request.AssigneeRepository
	subRepo      request.SubscriptionRepository
	dispatcher   events.EventPublisher
	logger       logger.Interface
}

func NewAddAssigneesUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	assigneeRepo request.AssigneeRepository,
	subRepo request.SubscriptionRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AddAssigneesUseCase {
	return &AddAssigneesUseCase{
		requestRepo:  requestRepo,
		eventRepo:    eventRepo,
		assigneeRepo: assigneeRepo,
		subRepo:      subRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (uc *AddAssigneesUseCase) Execute(ctx context.Context, cmd AddAssigneesCommand) (*AddAssigneesResult, error) {
	uc.logger.Infow("executing add assignees use case", "request_id", cmd.RequestID, "user_ids", cmd.UserIDs)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if len(cmd.UserIDs) == 0 {
		return nil, errors.NewValidationError("at least one user ID is required")
	}
	for _, id := range cmd.UserIDs {
		if id == 0 {
			return nil, errors.NewValidationError("invalid user ID")
		}
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.assigneeRepo.ListUserIDs(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to list assignees", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	member := make(map[uint]bool, len(existing))
	for _, id := range existing {
		member[id] = true
	}

	// Dedupe within the batch and against existing membership.
	added := make([]uint, 0, len(cmd.UserIDs))
	for _, id := range cmd.UserIDs {
		if member[id] {
			continue
		}
		if err := uc.assigneeRepo.Add(ctx, cmd.RequestID, id); err != nil {
			uc.logger.Errorw("failed to add assignee", "request_id", cmd.RequestID, "user_id", id, "error", err)
			return nil, err
		}
		member[id] = true
		added = append(added, id)
	}

	if len(added) > 0 {
		if !req.PromoteOnAssign() {
			req.Touch()
		}
		if err := uc.requestRepo.Update(ctx, req); err != nil {
			uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
			return nil, err
		}
	}

	// The event lists the full requested set, including IDs that were
	// already members.
	if ev, err := request.NewAssigneesAddedEvent(cmd.RequestID, cmd.ActorID, request.AssigneesAddedPayload{UserIDs: cmd.UserIDs}); err == nil {
		if err := uc.eventRepo.Save(ctx, ev); err != nil {
			uc.logger.Warnw("failed to append assignees_added event", "request_id", cmd.RequestID, "error", err)
		}
	}

	for _, id := range added {
		uc.subscribe(ctx, cmd.RequestID, id)
	}
	if len(added) > 0 && uc.dispatcher != nil {
		notification := request.NewAssignedNotification(req.ID(), req.Title(), added, cmd.ActorID)
		if err := uc.dispatcher.Publish(notification); err != nil {
			uc.logger.Warnw("failed to publish assigned notification", "request_id", req.ID(), "error", err)
		}
	}

	return &AddAssigneesResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		Added:     added,
	}, nil
}

func (uc *AddAssigneesUseCase) subscribe(ctx context.Context, requestID, userID uint) {
	exists, err := uc.subRepo.Exists(ctx, requestID, userID)
	if err != nil || exists {
		return
	}
	sub, err := request.NewSubscription(requestID, userID)
	if err != nil {
		return
	}
	if err := uc.subRepo.Save(ctx, sub); err != nil {
		uc.logger.Warnw("failed to subscribe assignee", "request_id", requestID, "user_id", userID, "error", err)
	}
}
