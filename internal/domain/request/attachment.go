package request

import (
	"fmt"
	"time"

	"orgjet/internal/shared/biztime"
)

// Attachment is a stored file row bound to a request. The binary itself
// lives in the file store; the row keeps the public URL and metadata.
type Attachment struct {
	id         uint
	requestID  uint
	uploaderID uint
	url        string
	name       string
	size       int64
	mime       string
	createdAt  time.Time
}

func NewAttachment(requestID, uploaderID uint, url, name string, size int64, mime string) (*Attachment, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if url == "" {
		return nil, fmt.Errorf("attachment URL is required")
	}
	if name == "" {
		return nil, fmt.Errorf("attachment name is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("attachment size must be positive")
	}

	return &Attachment{
		requestID:  requestID,
		uploaderID: uploaderID,
		url:        url,
		name:       name,
		size:       size,
		mime:       mime,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	requestID uint,
	uploaderID uint,
	url string,
	name string,
	size int64,
	mime string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}

	return &Attachment{
		id:         id,
		requestID:  requestID,
		uploaderID: uploaderID,
		url:        url,
		name:       name,
		size:       size,
		mime:       mime,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint { return a.id }
func (a *Attachment) RequestID() uint { return a.requestID }
func (a *Attachment) UploaderID() uint { return a.uploaderID }
func (a *Attachment) URL() string { return a.url }
func (a *Attachment) Name() string { return a.name }
func (a *Attachment) Size() int64 { return a.size }
func (a *Attachment) Mime() string { return a.mime }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Snapshot returns the denormalized copy embedded in event payloads.
func (a *Attachment) Snapshot() AttachmentSnapshot {
	return AttachmentSnapshot{
		ID:        a.id,
		URL:       a.url,
		Name:      a.name,
		Size:      a.size,
		Mime:      a.mime,
		CreatedAt: a.createdAt,
	}
}
