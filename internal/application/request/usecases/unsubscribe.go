package usecases

import (
	"context"

	"orgjet/internal/domain/request"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type UnsubscribeCommand struct {
	RequestID uint
	ActorID   uint
}

type UnsubscribeResult struct {
	RequestID  uint
	Subscribed bool
}

type UnsubscribeUseCase struct {
	requestRepo request.Repository
	subRepo     request.SubscriptionRepository
	logger      logger.Interface
}

func NewUnsubscribeUseCase(
	requestRepo request.Repository,
	subRepo request.SubscriptionRepository,
	logger logger.Interface,
) *UnsubscribeUseCase {
	return &UnsubscribeUseCase{
		requestRepo: requestRepo,
		subRepo:     subRepo,
		logger:      logger,
	}
}

func (uc *UnsubscribeUseCase) Execute(ctx context.Context, cmd UnsubscribeCommand) (*UnsubscribeResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	if _, err := uc.requestRepo.FindByID(ctx, cmd.RequestID); err != nil {
		return nil, err
	}

	if err := uc.subRepo.Remove(ctx, cmd.RequestID, cmd.ActorID); err != nil {
		uc.logger.Errorw("failed to remove subscription", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	return &UnsubscribeResult{RequestID: cmd.RequestID, Subscribed: false}, nil
}
