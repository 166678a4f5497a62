package usecases

import (
	"context"
	"time"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

const maxCommentLength = 10000

type AddCommentCommand struct {
	RequestID uint
	Body      string
	ActorID   uint
}

type AddCommentResult struct {
	EventID   uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	requestRepo request.Repository
	eventRepo   request.EventRepository
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "request_id", cmd.RequestID, "actor_id", cmd.ActorID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Body == "" {
		return nil, errors.NewValidationError("comment body is required")
	}
	if len(cmd.Body) > maxCommentLength {
		return nil, errors.NewValidationError("comment exceeds maximum length")
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	ev, err := request.NewCommentEvent(cmd.RequestID, cmd.ActorID, request.CommentPayload{Body: cmd.Body})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Comments live only in the activity log; no request fields change and
	// updated_at is untouched.
	if err := uc.eventRepo.Save(ctx, ev); err != nil {
		uc.logger.Errorw("failed to append comment event", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if uc.dispatcher != nil {
		notification := request.NewCommentNotification(req.ID(), req.Title(), cmd.Body, cmd.ActorID)
		if err := uc.dispatcher.Publish(notification); err != nil {
			uc.logger.Warnw("failed to publish comment notification", "request_id", req.ID(), "error", err)
		}
	}

	return &AddCommentResult{
		EventID:   ev.ID(),
		CreatedAt: ev.CreatedAt(),
	}, nil
}
