package usecases

import (
	"context"
	"strings"
	"time"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

// CreatePostCommand combines optional text with optional uploads. At least
// one of the two must be present.
type CreatePostCommand struct {
	RequestID uint
	Text      *string
	Files     []UploadFile
	ActorID   uint
}

type CreatePostResult struct {
	EventID     uint
	Attachments []request.AttachmentSnapshot
	CreatedAt   time.Time
}

type CreatePostUseCase struct {
	requestRepo    request.Repository
	eventRepo      request.EventRepository
	attachmentRepo request.AttachmentRepository
	fileStore      FileStore
	dispatcher     events.EventPublisher
	logger         logger.Interface
}

func NewCreatePostUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	attachmentRepo request.AttachmentRepository,
	fileStore FileStore,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error) {
	uc.logger.Infow("executing create post use case", "request_id", cmd.RequestID, "files", len(cmd.Files))

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	text := cmd.Text
	if text != nil && strings.TrimSpace(*text) == "" {
		text = nil
	}
	if text == nil && len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("post requires text or attachments")
	}
	if len(cmd.Files) > 0 {
		if err := ValidateUploads(cmd.Files); err != nil {
			return nil, err
		}
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	var snapshots []request.AttachmentSnapshot
	if len(cmd.Files) > 0 {
		snapshots, err = StoreUploads(ctx, req.ID(), cmd.ActorID, cmd.Files, uc.fileStore, uc.attachmentRepo, uc.logger)
		if err != nil {
			return nil, err
		}
	}

	// Attachment rows are created first; the single post event embeds their
	// snapshots so the log entry is self-contained.
	ev, err := request.NewPostEvent(req.ID(), cmd.ActorID, request.PostPayload{Text: text, Attachments: snapshots})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.eventRepo.Save(ctx, ev); err != nil {
		uc.logger.Errorw("failed to append post event", "request_id", req.ID(), "error", err)
		return nil, err
	}

	if text != nil && uc.dispatcher != nil {
		notification := request.NewCommentNotification(req.ID(), req.Title(), *text, cmd.ActorID)
		if err := uc.dispatcher.Publish(notification); err != nil {
			uc.logger.Warnw("failed to publish comment notification", "request_id", req.ID(), "error", err)
		}
	}

	return &CreatePostResult{
		EventID:     ev.ID(),
		Attachments: snapshots,
		CreatedAt:   ev.CreatedAt(),
	}, nil
}
