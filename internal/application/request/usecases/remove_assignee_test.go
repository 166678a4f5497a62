package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
)

func TestRemoveAssigneeUseCase_Execute(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusAssigned, 7)
	req.SetLegacyAssignee(uintPtr(42))

	var removed [2]uint
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	mockAssignees := &mockAssigneeRepository{
		RemoveFunc: func(ctx context.Context, requestID, userID uint) error {
			removed = [2]uint{requestID, userID}
			return nil
		},
	}
	var savedEvent *request.Event
	mockEvents := &mockEventRepository{
		SaveFunc: func(ctx context.Context, ev *request.Event) error {
			savedEvent = ev
			return nil
		},
	}

	useCase := NewRemoveAssigneeUseCase(mockRepo, mockEvents, mockAssignees, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RemoveAssigneeCommand{
		RequestID: 10,
		UserID:    42,
		ActorID:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, [2]uint{10, 42}, removed)
	// No demotion on removal, but the matching legacy field clears.
	assert.Equal(t, "ASSIGNED", result.Status)
	assert.Nil(t, req.AssigneeID())

	require.NotNil(t, savedEvent)
	assert.Equal(t, request.EventTypeAssigneeRemoved, savedEvent.Type())
	var payload request.AssigneeRemovedPayload
	require.NoError(t, savedEvent.DecodePayload(&payload))
	assert.Equal(t, uint(42), payload.UserID)
}

func TestRemoveAssigneeUseCase_Execute_OtherUserKeepsLegacyField(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusAssigned, 7)
	req.SetLegacyAssignee(uintPtr(42))

	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}

	useCase := NewRemoveAssigneeUseCase(mockRepo, &mockEventRepository{}, &mockAssigneeRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), RemoveAssigneeCommand{
		RequestID: 10,
		UserID:    5,
		ActorID:   7,
	})

	require.NoError(t, err)
	require.NotNil(t, req.AssigneeID())
	assert.Equal(t, uint(42), *req.AssigneeID())
}
