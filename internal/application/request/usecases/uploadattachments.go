package usecases

import (
	"context"
	"io"
	"strings"

	"orgjet/internal/domain/request"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

const (
	maxAttachmentSize = 5 << 20
	maxFilesPerUpload = 5
)

// UploadFile is one incoming multipart file.
type UploadFile struct {
	Name    string
	Mime    string
	Size    int64
	Content io.Reader
}

type UploadAttachmentsCommand struct {
	RequestID uint
	Files     []UploadFile
	ActorID   uint
}

type UploadAttachmentsResult struct {
	Attachments []request.AttachmentSnapshot
}

// FileStore persists attachment binaries. URLs returned here are the public
// paths stored on attachment rows and embedded in event payloads.
type FileStore interface {
	Save(ctx context.Context, originalName string, content io.Reader, size int64) (string, error)
	Remove(url string) error
}

type UploadAttachmentsUseCase struct {
	requestRepo    request.Repository
	eventRepo      request.EventRepository
	attachmentRepo request.AttachmentRepository
	fileStore      FileStore
	logger         logger.Interface
}

func NewUploadAttachmentsUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	attachmentRepo request.AttachmentRepository,
	fileStore FileStore,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*UploadAttachmentsResult, error) {
	uc.logger.Infow("executing upload attachments use case", "request_id", cmd.RequestID, "files", len(cmd.Files))

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := ValidateUploads(cmd.Files); err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	snapshots, err := StoreUploads(ctx, req.ID(), cmd.ActorID, cmd.Files, uc.fileStore, uc.attachmentRepo, uc.logger)
	if err != nil {
		return nil, err
	}

	if ev, err := request.NewAttachmentAddedEvent(req.ID(), cmd.ActorID, request.AttachmentAddedPayload{Attachments: snapshots}); err == nil {
		if err := uc.eventRepo.Save(ctx, ev); err != nil {
			uc.logger.Warnw("failed to append attachment_added event", "request_id", req.ID(), "error", err)
		}
	}

	return &UploadAttachmentsResult{Attachments: snapshots}, nil
}

// ValidateUploads enforces the upload limits: images only, five files per
// call, five MiB per file.
func ValidateUploads(files []UploadFile) error {
	if len(files) == 0 {
		return errors.NewValidationError("at least one file is required")
	}
	if len(files) > maxFilesPerUpload {
		return errors.NewValidationError("too many files: maximum is 5 per upload")
	}
	for _, f := range files {
		if !strings.HasPrefix(f.Mime, "image/") {
			return errors.NewValidationError("only image uploads are allowed")
		}
		if f.Size <= 0 || f.Size > maxAttachmentSize {
			return errors.NewValidationError("file exceeds maximum size of 5 MiB")
		}
	}
	return nil
}

// StoreUploads writes each file to the store and records its attachment row,
// returning the snapshots embedded in event payloads. Shared with the post
// operation.
func StoreUploads(
	ctx context.Context,
	requestID uint,
	actorID uint,
	files []UploadFile,
	store FileStore,
	attachmentRepo request.AttachmentRepository,
	log logger.Interface,
) ([]request.AttachmentSnapshot, error) {
	snapshots := make([]request.AttachmentSnapshot, 0, len(files))
	for _, f := range files {
		url, err := store.Save(ctx, f.Name, f.Content, f.Size)
		if err != nil {
			log.Errorw("failed to store upload", "request_id", requestID, "name", f.Name, "error", err)
			return nil, errors.NewInternalError("failed to store upload")
		}

		att, err := request.NewAttachment(requestID, actorID, url, f.Name, f.Size, f.Mime)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := attachmentRepo.Save(ctx, att); err != nil {
			log.Errorw("failed to save attachment row", "request_id", requestID, "name", f.Name, "error", err)
			return nil, err
		}
		snapshots = append(snapshots, att.Snapshot())
	}
	return snapshots, nil
}
