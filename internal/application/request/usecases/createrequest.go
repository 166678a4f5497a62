package usecases

import (
	"context"
	"time"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/biztime"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type CreateRequestCommand struct {
	Title       string
	Description string
	TypeID      uint
	Priority    string
	DueAt       *string
	Company     *string
	CompanyID   *string
	TeamID      *uint
	Metadata    map[string]interface{}
	CreatorID   uint
}

type CreateRequestResult struct {
	RequestID uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateRequestUseCase struct {
	requestRepo request.Repository
	eventRepo   request.EventRepository
	subRepo     request.SubscriptionRepository
	typeRepo    requesttype.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	subRepo request.SubscriptionRepository,
	typeRepo requesttype.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		subRepo:     subRepo,
		typeRepo:    typeRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	var dueAt *time.Time
	if cmd.DueAt != nil && *cmd.DueAt != "" {
		t, err := biztime.ParseDueAt(*cmd.DueAt)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		dueAt = &t
	}

	if _, err := uc.typeRepo.FindByID(ctx, cmd.TypeID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("unknown request type")
		}
		uc.logger.Errorw("failed to load request type", "type_id", cmd.TypeID, "error", err)
		return nil, err
	}

	newRequest, err := request.NewRequest(cmd.Title, cmd.Description, cmd.TypeID, vo.Priority(cmd.Priority), cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newRequest.SetDueAt(dueAt)
	newRequest.SetCompany(cmd.Company, cmd.CompanyID)
	if cmd.Metadata != nil {
		newRequest.SetMetadata(cmd.Metadata)
	}

	// Team defaults to the creator's team unless set explicitly.
	if cmd.TeamID != nil {
		newRequest.SetTeam(*cmd.TeamID)
	} else if creator, err := uc.userRepo.FindByID(ctx, cmd.CreatorID); err == nil && creator != nil && creator.TeamID() != nil {
		newRequest.SetTeam(*creator.TeamID())
	}

	if err := uc.requestRepo.Save(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, err
	}

	uc.appendCreatedEvent(ctx, newRequest, cmd)
	uc.subscribeCreator(ctx, newRequest.ID(), cmd.CreatorID)

	uc.logger.Infow("request created", "request_id", newRequest.ID(), "status", newRequest.Status().String())

	return &CreateRequestResult{
		RequestID: newRequest.ID(),
		Status:    newRequest.Status().String(),
		Priority:  newRequest.Priority().String(),
		CreatedAt: newRequest.CreatedAt(),
	}, nil
}

// appendCreatedEvent records the creation snapshot in the activity log. The
// log is an audit trail; a failed append is logged and never fails the
// operation.
func (uc *CreateRequestUseCase) appendCreatedEvent(ctx context.Context, req *request.Request, cmd CreateRequestCommand) {
	var dueAt *string
	if req.DueAt() != nil {
		s := req.DueAt().Format(time.RFC3339)
		dueAt = &s
	}

	ev, err := request.NewCreatedEvent(req.ID(), cmd.CreatorID, request.CreatedPayload{
		Title:     req.Title(),
		DueAt:     dueAt,
		Company:   cmd.Company,
		CompanyID: cmd.CompanyID,
	})
	if err != nil {
		uc.logger.Warnw("failed to build created event", "request_id", req.ID(), "error", err)
		return
	}
	if err := uc.eventRepo.Save(ctx, ev); err != nil {
		uc.logger.Warnw("failed to append created event", "request_id", req.ID(), "error", err)
	}
}

func (uc *CreateRequestUseCase) subscribeCreator(ctx context.Context, requestID, creatorID uint) {
	sub, err := request.NewSubscription(requestID, creatorID)
	if err != nil {
		return
	}
	if err := uc.subRepo.Save(ctx, sub); err != nil {
		uc.logger.Warnw("failed to subscribe creator", "request_id", requestID, "user_id", creatorID, "error", err)
	}
}
