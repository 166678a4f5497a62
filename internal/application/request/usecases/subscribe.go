package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type SubscribeCommand struct {
	RequestID uint
	ActorID   uint
}

type SubscribeResult struct {
	RequestID  uint
	Subscribed bool
}

type SubscribeUseCase struct {
	requestRepo request.Repository
	subRepo     request.SubscriptionRepository
	logger      logger.Interface
}

func NewSubscribeUseCase(
	requestRepo request.Repository,
	subRepo request.SubscriptionRepository,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		requestRepo: requestRepo,
		subRepo:     subRepo,
		logger:      logger,
	}
}

// Execute is idempotent: subscribing twice leaves one watcher row.
func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*SubscribeResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	if _, err := uc.requestRepo.FindByID(ctx, cmd.RequestID); err != nil {
		return nil, err
	}

	exists, err := uc.subRepo.Exists(ctx, cmd.RequestID, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to check subscription", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !exists {
		sub, err := request.NewSubscription(cmd.RequestID, cmd.ActorID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.subRepo.Save(ctx, sub); err != nil {
			uc.logger.Errorw("failed to save subscription", "request_id", cmd.RequestID, "error", err)
			return nil, err
		}
	}

	return &SubscribeResult{RequestID: cmd.RequestID, Subscribed: true}, nil
}
