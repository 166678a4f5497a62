package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

// AssignRequestCommand sets or clears the single assignee. A nil AssigneeID
// clears every assignee; a value adds one.
type AssignRequestCommand struct {
	RequestID  uint
	AssigneeID *uint
	ActorID    uint
}

type AssignRequestResult struct {
	RequestID uint
	Status    string
	Promoted  bool
}

type AssignRequestUseCase struct {
	requestRepo  request.Repository
	eventRepo    request.EventRepository
	assigneeRepo request.AssigneeRepository
	subRepo      request.SubscriptionRepository
	dispatcher   events.EventPublisher
	logger       logger.Interface
}

func NewAssignRequestUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	assigneeRepo request.AssigneeRepository,
	subRepo request.SubscriptionRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AssignRequestUseCase {
	return &AssignRequestUseCase{
		requestRepo:  requestRepo,
		eventRepo:    eventRepo,
		assigneeRepo: assigneeRepo,
		subRepo:      subRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (uc *AssignRequestUseCase) Execute(ctx context.Context, cmd AssignRequestCommand) (*AssignRequestResult, error) {
	uc.logger.Infow("executing assign request use case", "request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if cmd.AssigneeID == nil {
		return uc.clearAssignees(ctx, req, cmd.ActorID)
	}
	return uc.assign(ctx, req, *cmd.AssigneeID, cmd.ActorID)
}

func (uc *AssignRequestUseCase) assign(ctx context.Context, req *request.Request, assigneeID, actorID uint) (*AssignRequestResult, error) {
	if assigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	exists, err := uc.assigneeRepo.Exists(ctx, req.ID(), assigneeID)
	if err != nil {
		uc.logger.Errorw("failed to check assignee membership", "request_id", req.ID(), "error", err)
		return nil, err
	}
	if !exists {
		if err := uc.assigneeRepo.Add(ctx, req.ID(), assigneeID); err != nil {
			uc.logger.Errorw("failed to add assignee", "request_id", req.ID(), "user_id", assigneeID, "error", err)
			return nil, err
		}
	}

	promoted, err := req.Assign(assigneeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", req.ID(), "error", err)
		return nil, err
	}

	if ev, err := request.NewAssigneesAddedEvent(req.ID(), actorID, request.AssigneesAddedPayload{UserIDs: []uint{assigneeID}}); err == nil {
		if err := uc.eventRepo.Save(ctx, ev); err != nil {
			uc.logger.Warnw("failed to append assignees_added event", "request_id", req.ID(), "error", err)
		}
	}

	uc.subscribeAssignee(ctx, req.ID(), assigneeID)
	uc.notifyAssigned(req, []uint{assigneeID}, actorID)

	return &AssignRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		Promoted:  promoted,
	}, nil
}

// clearAssignees drops every join row and the legacy field. Status is never
// demoted on unassign.
func (uc *AssignRequestUseCase) clearAssignees(ctx context.Context, req *request.Request, actorID uint) (*AssignRequestResult, error) {
	if err := uc.assigneeRepo.DeleteByRequestID(ctx, req.ID()); err != nil {
		uc.logger.Errorw("failed to clear assignees", "request_id", req.ID(), "error", err)
		return nil, err
	}

	req.ClearAssignee()
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", req.ID(), "error", err)
		return nil, err
	}

	if ev, err := request.NewAssigneesClearedEvent(req.ID(), actorID); err == nil {
		if err := uc.eventRepo.Save(ctx, ev); err != nil {
			uc.logger.Warnw("failed to append assignees_cleared event", "request_id", req.ID(), "error", err)
		}
	}

	return &AssignRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
	}, nil
}

func (uc *AssignRequestUseCase) subscribeAssignee(ctx context.Context, requestID, userID uint) {
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

func (uc *AssignRequestUseCase) notifyAssigned(req *request.Request, assigneeIDs []uint, actorID uint) {
	if uc.dispatcher == nil {
		return
	}
	notification := request.NewAssignedNotification(req.ID(), req.Title(), assigneeIDs, actorID)
	if err := uc.dispatcher.Publish(notification); err != nil {
		uc.logger.Warnw("failed to publish assigned notification", "request_id", req.ID(), "error", err)
	}
}
