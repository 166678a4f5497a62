package request

import (
	"fmt"
	"time"

	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
)

// Request is the work-request aggregate. The status field and the legacy
// single-assignee field are the authoritative current state; the event log is
// an audit trail only and is never replayed.
type Request struct {
	id          uint
	title       string
	description string
	typeID      uint
	creatorID   uint
	teamID      *uint
	assigneeID  *uint
	status      vo.Status
	priority    vo.Priority
	dueAt       *time.Time
	company     *string
	companyID   *string
	metadata    map[string]interface{}
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRequest(
	title string,
	description string,
	typeID uint,
	priority vo.Priority,
	creatorID uint,
) (*Request, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if typeID == 0 {
		return nil, fmt.Errorf("type ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := biztime.NowUTC()
	return &Request{
		title:       title,
		description: description,
		typeID:      typeID,
		creatorID:   creatorID,
		status:      vo.StatusNew,
		priority:    priority,
		metadata:    map[string]interface{}{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(
	id uint,
	title string,
	description string,
	typeID uint,
	creatorID uint,
	teamID *uint,
	assigneeID *uint,
	status vo.Status,
	priority vo.Priority,
	dueAt *time.Time,
	company *string,
	companyID *string,
	metadata map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &Request{
		id:          id,
		title:       title,
		description: description,
		typeID:      typeID,
		creatorID:   creatorID,
		teamID:      teamID,
		assigneeID:  assigneeID,
		status:      status,
		priority:    priority,
		dueAt:       dueAt,
		company:     company,
		companyID:   companyID,
		metadata:    metadata,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Request) ID() uint              { return r.id }
func (r *Request) Title() string         { return r.title }
func (r *Request) Description() string   { return r.description }
func (r *Request) TypeID() uint          { return r.typeID }
func (r *Request) CreatorID() uint       { return r.creatorID }
func (r *Request) TeamID() *uint         { return r.teamID }
func (r *Request) AssigneeID() *uint     { return r.assigneeID }
func (r *Request) Status() vo.Status     { return r.status }
func (r *Request) Priority() vo.Priority { return r.priority }
func (r *Request) DueAt() *time.Time     { return r.dueAt }
func (r *Request) Company() *string      { return r.company }
func (r *Request) CompanyID() *string    { return r.companyID }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }
func (r *Request) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Request) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(r.metadata))
	for k, v := range r.metadata {
		out[k] = v
	}
	return out
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// SetTeam attaches the request to a team. Only meaningful before first save;
// team membership never changes afterwards.
func (r *Request) SetTeam(teamID uint) {
	if teamID != 0 {
		r.teamID = &teamID
	}
}

func (r *Request) SetDueAt(t *time.Time) {
	r.dueAt = t
	r.touch()
}

func (r *Request) SetCompany(company, companyID *string) {
	r.company = company
	r.companyID = companyID
}

func (r *Request) SetMetadata(metadata map[string]interface{}) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	r.metadata = metadata
}

// ChangeStatus overwrites the status. There is no transition table: any
// status may move to any other valid status.
func (r *Request) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	r.status = newStatus
	r.touch()
	return nil
}

func (r *Request) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	r.priority = newPriority
	r.touch()
	return nil
}

// SetLegacyAssignee overwrites the legacy single-assignee field without
// touching status. The PATCH endpoint uses this path; the assign operation
// goes through Assign.
func (r *Request) SetLegacyAssignee(assigneeID *uint) {
	r.assigneeID = assigneeID
	r.touch()
}

// Assign records an assignee on the legacy field and promotes a NEW or
// TRIAGE request to ASSIGNED. The promotion is one-way: it never happens on
// unassign and never reverts. Returns whether the status was promoted.
func (r *Request) Assign(assigneeID uint) (bool, error) {
	if assigneeID == 0 {
		return false, fmt.Errorf("assignee ID cannot be zero")
	}
	r.assigneeID = &assigneeID
	promoted := false
	if r.status.PromotesOnAssign() {
		r.status = vo.StatusAssigned
		promoted = true
	}
	r.touch()
	return promoted, nil
}

// PromoteOnAssign applies the NEW/TRIAGE to ASSIGNED promotion without
// touching the legacy assignee field. Batch assignee additions use this
// path. Returns whether the status changed.
func (r *Request) PromoteOnAssign() bool {
	if !r.status.PromotesOnAssign() {
		return false
	}
	r.status = vo.StatusAssigned
	r.touch()
	return true
}

// ClearAssignee removes the legacy assignee. Status is left untouched
// regardless of its current value.
func (r *Request) ClearAssignee() {
	r.assigneeID = nil
	r.touch()
}

// Touch advances the update timestamp without changing any other field.
// Assignee membership lives in join rows, so membership changes must bump
// the aggregate's updated_at themselves to keep list ordering current.
func (r *Request) Touch() {
	r.touch()
}

func (r *Request) touch() {
	r.updatedAt = biztime.NowUTC()
}
