package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/shared/errors"
)

func TestUpdateRequestUseCase_Execute_StatusOverwrite(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.Status
		patch      string
		wantStatus string
		wantErr    bool
	}{
		{name: "new straight to done", from: vo.StatusNew, patch: "DONE", wantStatus: "DONE"},
		{name: "done back to triage", from: vo.StatusDone, patch: "TRIAGE", wantStatus: "TRIAGE"},
		{name: "cancelled to in progress", from: vo.StatusCancelled, patch: "IN_PROGRESS", wantStatus: "IN_PROGRESS"},
		{name: "unknown status rejected", from: vo.StatusNew, patch: "ARCHIVED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reconstructRequest(t, 10, tt.from, 7)
			var updated *request.Request
			mockRepo := &mockRequestRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
					return req, nil
				},
				UpdateFunc: func(ctx context.Context, r *request.Request) error {
					updated = r
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

			useCase := NewUpdateRequestUseCase(mockRepo, mockEvents, &mockLogger{})
			result, err := useCase.Execute(context.Background(), UpdateRequestCommand{
				RequestID: 10,
				Status:    &tt.patch,
				ActorID:   7,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Nil(t, updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			require.NotNil(t, updated)

			require.NotNil(t, savedEvent)
			assert.Equal(t, request.EventTypeUpdated, savedEvent.Type())
			var payload request.UpdatedPayload
			require.NoError(t, savedEvent.DecodePayload(&payload))
			require.NotNil(t, payload.Status)
			assert.Equal(t, tt.patch, *payload.Status)
			assert.Nil(t, payload.Priority)
		})
	}
}

func TestUpdateRequestUseCase_Execute_AssigneeConvention(t *testing.T) {
	tests := []struct {
		name         string
		initial      *uint
		patch        *string
		wantAssignee *uint
	}{
		{name: "omitted leaves untouched", initial: uintPtr(4), patch: nil, wantAssignee: uintPtr(4)},
		{name: "blank clears", initial: uintPtr(4), patch: strPtr(""), wantAssignee: nil},
		{name: "whitespace clears", initial: uintPtr(4), patch: strPtr("  "), wantAssignee: nil},
		{name: "value overwrites", initial: nil, patch: strPtr("9"), wantAssignee: uintPtr(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reconstructRequest(t, 10, vo.StatusNew, 7)
			if tt.initial != nil {
				req.SetLegacyAssignee(tt.initial)
			}
			mockRepo := &mockRequestRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
					return req, nil
				},
			}

			useCase := NewUpdateRequestUseCase(mockRepo, &mockEventRepository{}, &mockLogger{})

			cmd := UpdateRequestCommand{RequestID: 10, AssigneeID: tt.patch, ActorID: 7}
			if tt.patch == nil {
				// A patch with no fields at all is rejected, so pair the
				// omitted assignee with a priority change.
				cmd.Priority = strPtr("LOW")
			}

			_, err := useCase.Execute(context.Background(), cmd)
			require.NoError(t, err)

			if tt.wantAssignee == nil {
				assert.Nil(t, req.AssigneeID())
			} else {
				require.NotNil(t, req.AssigneeID())
				assert.Equal(t, *tt.wantAssignee, *req.AssigneeID())
			}
			// The patch path never promotes.
			assert.Equal(t, vo.StatusNew, req.Status())
		})
	}
}

func TestUpdateRequestUseCase_Execute_EmptyPatchRejected(t *testing.T) {
	useCase := NewUpdateRequestUseCase(&mockRequestRepository{}, &mockEventRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateRequestCommand{RequestID: 10, ActorID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateRequestUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return nil, errors.NewNotFoundError("request")
		},
	}
	useCase := NewUpdateRequestUseCase(mockRepo, &mockEventRepository{}, &mockLogger{})

	status := "DONE"
	_, err := useCase.Execute(context.Background(), UpdateRequestCommand{RequestID: 99, Status: &status, ActorID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
