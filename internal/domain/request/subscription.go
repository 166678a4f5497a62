package request

import (
	"fmt"
	"time"

	"orgjet/internal/shared/biztime"
)

// Subscription marks a user as a watcher of a request. Watchers receive
// notifications for assignment and comment activity.
type Subscription struct {
	id        uint
	requestID uint
	userID    uint
	createdAt time.Time
}

func NewSubscription(requestID, userID uint) (*Subscription, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Subscription{
		requestID: requestID,
		userID:    userID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructSubscription(id, requestID, userID uint, createdAt time.Time) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}

	return &Subscription{
		id:        id,
		requestID: requestID,
		userID:    userID,
		createdAt: createdAt,
	}, nil
}

func (s *Subscription) ID() uint { return s.id }
func (s *Subscription) RequestID() uint { return s.requestID }
func (s *Subscription) UserID() uint { return s.userID }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}
