package usecases

import (
	"context"

	"orgjet/internal/application/request/dto"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error)
}

type AssignRequestExecutor interface {
	Execute(ctx context.Context, cmd AssignRequestCommand) (*AssignRequestResult, error)
}

type AddAssigneesExecutor interface {
	Execute(ctx context.Context, cmd AddAssigneesCommand) (*AddAssigneesResult, error)
}

type RemoveAssigneeExecutor interface {
	Execute(ctx context.Context, cmd RemoveAssigneeCommand) (*RemoveAssigneeResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type CreatePostExecutor interface {
	Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error)
}

type UploadAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, error)
}

type GetBoardExecutor interface {
	Execute(ctx context.Context, query BoardQuery) (*dto.BoardDTO, error)
}

type SubscribeExecutor interface {
	Execute(ctx context.Context, cmd SubscribeCommand) (*SubscribeResult, error)
}

type UnsubscribeExecutor interface {
	Execute(ctx context.Context, cmd UnsubscribeCommand) (*UnsubscribeResult, error)
}
