// Package notification fans request activity out to watchers by email.
// Handlers hang off the in-process event dispatcher; every send is
// best-effort and failures only get logged.
package notification

import (
	"context"
	"fmt"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/services/markdown"
)

// EmailSender delivers a single message. Implemented over SMTP; a nil sender
// disables notifications entirely.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

type Service struct {
	subRepo  request.SubscriptionRepository
	userRepo user.Repository
	sender   EmailSender
	markdown markdown.Service
	logger   logger.Interface
}

func NewService(
	subRepo request.SubscriptionRepository,
	userRepo user.Repository,
	sender EmailSender,
	markdown markdown.Service,
	logger logger.Interface,
) *Service {
	return &Service{
		subRepo:  subRepo,
		userRepo: userRepo,
		sender:   sender,
		markdown: markdown,
		logger:   logger,
	}
}

// Register hooks the service onto the dispatcher. Call once at startup.
func (s *Service) Register(dispatcher events.EventDispatcher) error {
	if err := dispatcher.Subscribe(request.AssignedNotificationType, events.HandlerFunc(s.handleAssigned)); err != nil {
		return err
	}
	return dispatcher.Subscribe(request.CommentNotificationType, events.HandlerFunc(s.handleComment))
}

func (s *Service) handleAssigned(event events.DomainEvent) error {
	n, ok := event.(*request.AssignedNotification)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	subject := fmt.Sprintf("Assigned: %s", n.Title)
	body := fmt.Sprintf("<p>You were added as an assignee on <strong>%s</strong>.</p>", n.Title)

	users, err := s.userRepo.FindByIDs(context.Background(), n.AssigneeIDs)
	if err != nil {
		return fmt.Errorf("failed to load assignees: %w", err)
	}
	for _, u := range users {
		if u.ID() == n.ActorID {
			continue
		}
		s.send(u, subject, body)
	}
	return nil
}

func (s *Service) handleComment(event events.DomainEvent) error {
	n, ok := event.(*request.CommentNotification)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	ctx := context.Background()
	watcherIDs, err := s.subRepo.ListUserIDs(ctx, n.GetAggregateID())
	if err != nil {
		return fmt.Errorf("failed to load watchers: %w", err)
	}

	// The actor never gets notified about their own comment.
	recipients := make([]uint, 0, len(watcherIDs))
	for _, id := range watcherIDs {
		if id != n.ActorID {
			recipients = append(recipients, id)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	rendered, err := s.markdown.ToHTMLSanitized(n.Body)
	if err != nil {
		rendered = n.Body
	}

	subject := fmt.Sprintf("New comment on: %s", n.Title)
	body := fmt.Sprintf("<p>New activity on <strong>%s</strong>:</p>%s", n.Title, rendered)

	users, err := s.userRepo.FindByIDs(ctx, recipients)
	if err != nil {
		return fmt.Errorf("failed to load watchers: %w", err)
	}
	for _, u := range users {
		s.send(u, subject, body)
	}
	return nil
}

func (s *Service) send(u *user.User, subject, body string) {
	if s.sender == nil {
		return
	}
	if err := s.sender.Send(u.Email(), subject, body); err != nil {
		s.logger.Warnw("failed to send notification email", "user_id", u.ID(), "error", err)
	}
}
