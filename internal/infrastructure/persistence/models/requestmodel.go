package models

import "gorm.io/datatypes"

type RequestModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	TypeID      uint    `gorm:"not null;index"`
	CreatorID   uint    `gorm:"not null;index"`
	TeamID      *uint   `gorm:"index"`
	AssigneeID  *uint   `gorm:"index"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	DueAt       *int64  `gorm:"index"`
	Company     *string `gorm:"size:200"`
	CompanyID   *string `gorm:"size:100"`
	Metadata    datatypes.JSON
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}

// RequestAssigneeModel is one row per (request, user) assignment; the unique
// pair index backs the no-duplicate guarantee.
type RequestAssigneeModel struct {
	ID        uint  `gorm:"primaryKey"`
	RequestID uint  `gorm:"not null;uniqueIndex:idx_request_assignee"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_request_assignee;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (RequestAssigneeModel) TableName() string {
	return "request_assignees"
}

// RequestEventModel rows are append-only; nothing updates or deletes them
// except a request delete cascade.
type RequestEventModel struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index"`
	ActorID   uint   `gorm:"not null;index"`
	EventType string `gorm:"size:40;not null;index"`
	Payload   datatypes.JSON
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (RequestEventModel) TableName() string {
	return "request_events"
}

type AttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	RequestID  uint   `gorm:"not null;index"`
	UploaderID uint   `gorm:"not null"`
	URL        string `gorm:"size:500;not null"`
	Name       string `gorm:"size:255;not null"`
	Size       int64  `gorm:"not null"`
	Mime       string `gorm:"size:100"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "request_attachments"
}

type SubscriptionModel struct {
	ID        uint  `gorm:"primaryKey"`
	RequestID uint  `gorm:"not null;uniqueIndex:idx_request_watcher"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_request_watcher;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (SubscriptionModel) TableName() string {
	return "request_subscriptions"
}
