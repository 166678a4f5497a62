package request

import "context"

// Filter narrows List and Board reads. Zero values mean "no constraint";
// all present constraints AND together.
type Filter struct {
	Statuses   []string
	TeamName   string
	TypeName   string
	Search     string
	MineUserID uint
}

// Repository persists the Request aggregate.
type Repository interface {
	Save(ctx context.Context, req *Request) error
	Update(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, error)
	Delete(ctx context.Context, id uint) error
}

// EventRepository stores the append-only activity log.
type EventRepository interface {
	Save(ctx context.Context, event *Event) error
	FindByRequestID(ctx context.Context, requestID uint) ([]*Event, error)
	DeleteByRequestID(ctx context.Context, requestID uint) error
}

// AssigneeRepository manages the request/user join rows backing
// multi-assignee membership.
type AssigneeRepository interface {
	Add(ctx context.Context, requestID, userID uint) error
	Remove(ctx context.Context, requestID, userID uint) error
	ListUserIDs(ctx context.Context, requestID uint) ([]uint, error)
	ListByRequestIDs(ctx context.Context, requestIDs []uint) (map[uint][]uint, error)
	Exists(ctx context.Context, requestID, userID uint) (bool, error)
	DeleteByRequestID(ctx context.Context, requestID uint) error
}

type SubscriptionRepository interface {
	Save(ctx context.Context, sub *Subscription) error
	Remove(ctx context.Context, requestID, userID uint) error
	Exists(ctx context.Context, requestID, userID uint) (bool, error)
	ListUserIDs(ctx context.Context, requestID uint) ([]uint, error)
	DeleteByRequestID(ctx context.Context, requestID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, att *Attachment) error
	FindByRequestID(ctx context.Context, requestID uint) ([]*Attachment, error)
	DeleteByRequestID(ctx context.Context, requestID uint) error
}
