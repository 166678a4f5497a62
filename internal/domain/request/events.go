package request

import (
	"encoding/json"
	"fmt"
	"time"

	"orgjet/internal/shared/biztime"
)

// EventType tags an entry in the request activity log.
type EventType string

const (
	EventTypeCreated          EventType = "created"
	EventTypeUpdated          EventType = "updated"
	EventTypeComment          EventType = "comment"
	EventTypeAssigneesAdded   EventType = "assignees_added"
	EventTypeAssigneeRemoved  EventType = "assignee_removed"
	EventTypeAssigneesCleared EventType = "assignees_cleared"
	EventTypeAttachmentAdded  EventType = "attachment_added"
	EventTypePost             EventType = "post"
)

// Payload shapes, one per event type. On the wire each payload is an opaque
// JSON document; these structs pin the conventional shape per type without
// changing it.

type CreatedPayload struct {
	Title     string  `json:"title"`
	DueAt     *string `json:"dueAt"`
	Company   *string `json:"company"`
	CompanyID *string `json:"companyId"`
}

// UpdatedPayload carries the raw patch exactly as submitted; nil means the
// field was absent from the patch.
type UpdatedPayload struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	DueAt      *string `json:"dueAt,omitempty"`
	AssigneeID *string `json:"assigneeId,omitempty"`
}

type CommentPayload struct {
	Body string `json:"body"`
}

type AssigneesAddedPayload struct {
	UserIDs []uint `json:"userIds"`
}

type AssigneeRemovedPayload struct {
	UserID uint `json:"userId"`
}

type AssigneesClearedPayload struct{}

// AttachmentSnapshot is the denormalized copy of an attachment row embedded
// in attachment_added and post payloads.
type AttachmentSnapshot struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Mime      string    `json:"mime"`
	CreatedAt time.Time `json:"createdAt"`
}

type AttachmentAddedPayload struct {
	Attachments []AttachmentSnapshot `json:"attachments"`
}

type PostPayload struct {
	Text        *string              `json:"text"`
	Attachments []AttachmentSnapshot `json:"attachments"`
}

// Event is one append-only entry in a request's activity log. Events are
// never mutated or deleted except when their request is deleted.
type Event struct {
	id        uint
	requestID uint
	actorID   uint
	eventType EventType
	payload   json.RawMessage
	createdAt time.Time
}

func newEvent(requestID, actorID uint, eventType EventType, payload interface{}) (*Event, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &Event{
		requestID: requestID,
		actorID:   actorID,
		eventType: eventType,
		payload:   raw,
		createdAt: biztime.NowUTC(),
	}, nil
}

func NewCreatedEvent(requestID, actorID uint, p CreatedPayload) (*Event, error) {
	return newEvent(requestID, actorID, EventTypeCreated, p)
}

func NewUpdatedEvent(requestID, actorID uint, p UpdatedPayload) (*Event, error) {
	return newEvent(requestID, actorID, EventTypeUpdated, p)
}

func NewCommentEvent(requestID, actorID uint, p CommentPayload) (*Event, error) {
	if p.Body == "" {
		return nil, fmt.Errorf("comment body is required")
	}
	return newEvent(requestID, actorID, EventTypeComment, p)
}

func NewAssigneesAddedEvent(requestID, actorID uint, p AssigneesAddedPayload) (*Event, error) {
	if len(p.UserIDs) == 0 {
		return nil, fmt.Errorf("at least one user ID is required")
	}
	return newEvent(requestID, actorID, EventTypeAssigneesAdded, p)
}

func NewAssigneeRemovedEvent(requestID, actorID uint, p AssigneeRemovedPayload) (*Event, error) {
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return newEvent(requestID, actorID, EventTypeAssigneeRemoved, p)
}

func NewAssigneesClearedEvent(requestID, actorID uint) (*Event, error) {
	return newEvent(requestID, actorID, EventTypeAssigneesCleared, AssigneesClearedPayload{})
}

func NewAttachmentAddedEvent(requestID, actorID uint, p AttachmentAddedPayload) (*Event, error) {
	if len(p.Attachments) == 0 {
		return nil, fmt.Errorf("at least one attachment is required")
	}
	return newEvent(requestID, actorID, EventTypeAttachmentAdded, p)
}

func NewPostEvent(requestID, actorID uint, p PostPayload) (*Event, error) {
	if p.Text == nil && len(p.Attachments) == 0 {
		return nil, fmt.Errorf("post requires text or attachments")
	}
	return newEvent(requestID, actorID, EventTypePost, p)
}

func ReconstructEvent(
	id uint,
	requestID uint,
	actorID uint,
	eventType EventType,
	payload json.RawMessage,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}

	return &Event{
		id:        id,
		requestID: requestID,
		actorID:   actorID,
		eventType: eventType,
		payload:   payload,
		createdAt: createdAt,
	}, nil
}

func (e *Event) ID() uint { return e.id }
func (e *Event) RequestID() uint { return e.requestID }
func (e *Event) ActorID() uint { return e.actorID }
func (e *Event) Type() EventType { return e.eventType }
func (e *Event) Payload() json.RawMessage { return e.payload }
func (e *Event) CreatedAt() time.Time { return e.createdAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// DecodePayload unmarshals the payload into the given variant struct.
func (e *Event) DecodePayload(v interface{}) error {
	if err := json.Unmarshal(e.payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.eventType, err)
	}
	return nil
}
