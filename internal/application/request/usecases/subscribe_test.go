package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
)

func TestSubscribeUseCase_Execute_Idempotent(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	saveCount := 0
	exists := false
	mockSubs := &mockSubscriptionRepository{
		ExistsFunc: func(ctx context.Context, requestID, userID uint) (bool, error) {
			return exists, nil
		},
		SaveFunc: func(ctx context.Context, sub *request.Subscription) error {
			saveCount++
			exists = true
			return nil
		},
	}

	useCase := NewSubscribeUseCase(mockRepo, mockSubs, &mockLogger{})

	for i := 0; i < 2; i++ {
		result, err := useCase.Execute(context.Background(), SubscribeCommand{RequestID: 10, ActorID: 7})
		require.NoError(t, err)
		assert.True(t, result.Subscribed)
	}
	assert.Equal(t, 1, saveCount)
}

func TestUnsubscribeUseCase_Execute(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	var removed [2]uint
	mockSubs := &mockSubscriptionRepository{
		RemoveFunc: func(ctx context.Context, requestID, userID uint) error {
			removed = [2]uint{requestID, userID}
			return nil
		},
	}

	useCase := NewUnsubscribeUseCase(mockRepo, mockSubs, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UnsubscribeCommand{RequestID: 10, ActorID: 7})

	require.NoError(t, err)
	assert.False(t, result.Subscribed)
	assert.Equal(t, [2]uint{10, 7}, removed)
}
