package request

import "orgjet/internal/domain/shared/events"

const (
	AssignedNotificationType = "request.assigned"
	CommentNotificationType  = "request.comment_added"
)

// AssignedNotification is published on the in-process dispatcher when a
// request gains assignees. Consumed by the notification service.
type AssignedNotification struct {
	events.BaseEvent
	Title       string
	AssigneeIDs []uint
	ActorID     uint
}

func NewAssignedNotification(requestID uint, title string, assigneeIDs []uint, actorID uint) *AssignedNotification {
	return &AssignedNotification{
		BaseEvent:   events.NewBaseEvent(requestID, AssignedNotificationType),
		Title:       title,
		AssigneeIDs: assigneeIDs,
		ActorID:     actorID,
	}
}

// CommentNotification is published when a comment or post lands on a
// request. Body carries the raw markdown.
type CommentNotification struct {
	events.BaseEvent
	Title   string
	Body    string
	ActorID uint
}

func NewCommentNotification(requestID uint, title, body string, actorID uint) *CommentNotification {
	return &CommentNotification{
		BaseEvent: events.NewBaseEvent(requestID, CommentNotificationType),
		Title:     title,
		Body:      body,
		ActorID:   actorID,
	}
}
