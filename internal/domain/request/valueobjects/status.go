package valueobjects

import (
	"fmt"
	"strings"
)

// Status is the request lifecycle status. Any status may move to any other
// status; the only automatic transition is the one-way NEW/TRIAGE -> ASSIGNED
// promotion on assignment.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusTriage     Status = "TRIAGE"
	StatusAssigned   Status = "ASSIGNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusReview     Status = "REVIEW"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

// Lanes returns every status in board lane order.
func Lanes() []Status {
	return []Status{
		StatusNew,
		StatusTriage,
		StatusAssigned,
		StatusInProgress,
		StatusBlocked,
		StatusReview,
		StatusDone,
		StatusCancelled,
	}
}

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusTriage:     true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusBlocked:    true,
	StatusReview:     true,
	StatusDone:       true,
	StatusCancelled:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// PromotesOnAssign reports whether assigning someone to a request in this
// status advances it to ASSIGNED.
func (s Status) PromotesOnAssign() bool {
	return s == StatusNew || s == StatusTriage
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return st, nil
}

// ParseStatusList parses a comma-separated status filter into the set of
// statuses it names. Blank segments are dropped; an unknown status fails the
// whole list.
func ParseStatusList(csv string) ([]Status, error) {
	if csv == "" {
		return nil, nil
	}
	var out []Status
	for _, seg := range strings.Split(csv, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		st, err := NewStatus(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
