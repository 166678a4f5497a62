package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/shared/constants"
	"orgjet/internal/shared/errors"
)

func TestDeleteRequestUseCase_Execute_Permissions(t *testing.T) {
	tests := []struct {
		name      string
		actorID   uint
		actorRole string
		wantErr   bool
	}{
		{name: "creator may delete", actorID: 7, actorRole: constants.RoleRequester},
		{name: "admin may delete", actorID: 99, actorRole: constants.RoleAdmin},
		{name: "coordinator may delete", actorID: 99, actorRole: constants.RoleCoordinator},
		{name: "other requester forbidden", actorID: 99, actorRole: constants.RoleRequester, wantErr: true},
		{name: "other assignee forbidden", actorID: 99, actorRole: constants.RoleAssignee, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reconstructRequest(t, 10, vo.StatusNew, 7)
			mockRepo := &mockRequestRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
					return req, nil
				},
			}

			useCase := NewDeleteRequestUseCase(
				mockRepo, &mockEventRepository{}, &mockAssigneeRepository{},
				&mockSubscriptionRepository{}, &mockAttachmentRepository{},
				&mockFileStore{}, &mockTxRunner{}, &mockLogger{},
			)

			_, err := useCase.Execute(context.Background(), DeleteRequestCommand{
				RequestID: 10,
				ActorID:   tt.actorID,
				ActorRole: tt.actorRole,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteRequestUseCase_Execute_CascadesInTransaction(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	var order []string
	inTx := false

	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			order = append(order, "request")
			return nil
		},
	}
	mockEvents := &mockEventRepository{
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			assert.True(t, inTx)
			order = append(order, "events")
			return nil
		},
	}
	mockAssignees := &mockAssigneeRepository{
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			order = append(order, "assignees")
			return nil
		},
	}
	mockSubs := &mockSubscriptionRepository{
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			order = append(order, "subscriptions")
			return nil
		},
	}
	att, err := request.ReconstructAttachment(5, 10, 7, "/uploads/a.png", "a.png", 100, "image/png", req.CreatedAt())
	require.NoError(t, err)
	mockAttachments := &mockAttachmentRepository{
		FindByRequestIDFunc: func(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
			return []*request.Attachment{att}, nil
		},
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			order = append(order, "attachments")
			return nil
		},
	}
	var removedFiles []string
	fileStore := &mockFileStore{
		RemoveFunc: func(url string) error {
			removedFiles = append(removedFiles, url)
			return nil
		},
	}
	txRunner := &mockTxRunner{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			inTx = true
			err := fn(ctx)
			inTx = false
			return err
		},
	}

	useCase := NewDeleteRequestUseCase(mockRepo, mockEvents, mockAssignees, mockSubs, mockAttachments, fileStore, txRunner, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 10,
		ActorID:   7,
		ActorRole: constants.RoleRequester,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.RequestID)
	assert.Equal(t, []string{"events", "assignees", "subscriptions", "attachments", "request"}, order)
	assert.Equal(t, []string{"/uploads/a.png"}, removedFiles)
}

func TestDeleteRequestUseCase_Execute_FileRemovalFailureStillSucceeds(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	att, err := request.ReconstructAttachment(5, 10, 7, "/uploads/a.png", "a.png", 100, "image/png", req.CreatedAt())
	require.NoError(t, err)

	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		FindByRequestIDFunc: func(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
			return []*request.Attachment{att}, nil
		},
	}
	fileStore := &mockFileStore{
		RemoveFunc: func(url string) error {
			return errors.NewInternalError("disk gone")
		},
	}

	useCase := NewDeleteRequestUseCase(
		mockRepo, &mockEventRepository{}, &mockAssigneeRepository{},
		&mockSubscriptionRepository{}, mockAttachments, fileStore, &mockTxRunner{}, &mockLogger{},
	)

	_, err = useCase.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 10,
		ActorID:   7,
		ActorRole: constants.RoleRequester,
	})
	require.NoError(t, err)
}

func TestDeleteRequestUseCase_Execute_RollbackOnFailure(t *testing.T) {
	req := reconstructRequest(t, 10, vo.StatusNew, 7)
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	mockSubs := &mockSubscriptionRepository{
		DeleteByRequestIDFunc: func(ctx context.Context, requestID uint) error {
			return errors.NewInternalError("constraint violation")
		},
	}
	fileRemoved := false
	fileStore := &mockFileStore{
		RemoveFunc: func(url string) error {
			fileRemoved = true
			return nil
		},
	}

	useCase := NewDeleteRequestUseCase(
		mockRepo, &mockEventRepository{}, &mockAssigneeRepository{},
		mockSubs, &mockAttachmentRepository{}, fileStore, &mockTxRunner{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 10,
		ActorID:   7,
		ActorRole: constants.RoleRequester,
	})
	require.Error(t, err)
	// Files are only touched after a successful commit.
	assert.False(t, fileRemoved)
}
