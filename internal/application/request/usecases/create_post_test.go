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

func TestCreatePostUseCase_Execute_TextOnly(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	var savedEvent *request.Event
	mockEvents := &mockEventRepository{
		SaveFunc: func(ctx context.Context, ev *request.Event) error {
			savedEvent = ev
			return nil
		},
	}

	useCase := NewCreatePostUseCase(mockRepo, mockEvents, &mockAttachmentRepository{}, &mockFileStore{}, &mockEventDispatcher{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreatePostCommand{
		RequestID: 10,
		Text:      strPtr("Replaced the cable."),
		ActorID:   7,
	})

	require.NoError(t, err)
	require.NotNil(t, savedEvent)
	assert.Equal(t, request.EventTypePost, savedEvent.Type())

	var payload request.PostPayload
	require.NoError(t, savedEvent.DecodePayload(&payload))
	require.NotNil(t, payload.Text)
	assert.Equal(t, "Replaced the cable.", *payload.Text)
	assert.Empty(t, payload.Attachments)
}

func TestCreatePostUseCase_Execute_FilesEmbedSnapshots(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, att *request.Attachment) error {
			return att.SetID(61)
		},
	}
	var savedEvent *request.Event
	mockEvents := &mockEventRepository{
		SaveFunc: func(ctx context.Context, ev *request.Event) error {
			savedEvent = ev
			return nil
		},
	}

	useCase := NewCreatePostUseCase(mockRepo, mockEvents, mockAttachments, &mockFileStore{}, &mockEventDispatcher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreatePostCommand{
		RequestID: 10,
		Files:     []UploadFile{imageFile("photo.png", 2048)},
		ActorID:   7,
	})

	require.NoError(t, err)
	require.Len(t, result.Attachments, 1)

	var payload request.PostPayload
	require.NoError(t, savedEvent.DecodePayload(&payload))
	assert.Nil(t, payload.Text)
	require.Len(t, payload.Attachments, 1)
	assert.Equal(t, uint(61), payload.Attachments[0].ID)
}

func TestCreatePostUseCase_Execute_EmptyRejected(t *testing.T) {
	useCase := NewCreatePostUseCase(&mockRequestRepository{}, &mockEventRepository{}, &mockAttachmentRepository{}, &mockFileStore{}, &mockEventDispatcher{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreatePostCommand
	}{
		{name: "nothing", cmd: CreatePostCommand{RequestID: 10, ActorID: 7}},
		{name: "whitespace text only", cmd: CreatePostCommand{RequestID: 10, Text: strPtr("   "), ActorID: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
