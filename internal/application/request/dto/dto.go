package dto

import (
	"encoding/json"
	"time"

	"orgjet/internal/domain/request"
)

type AssigneeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EventDTO struct {
	ID        uint            `json:"id"`
	ActorID   uint            `json:"actor_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Mime      string    `json:"mime"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestDTO is the detail view: full fields plus the ordered activity log.
type RequestDTO struct {
	ID          uint                   `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	TypeID      uint                   `json:"type_id"`
	TypeName    string                 `json:"type_name"`
	TeamName    *string                `json:"team_name"`
	CreatorID   uint                   `json:"creator_id"`
	AssigneeID  *uint                  `json:"assignee_id"`
	Assignees   []AssigneeDTO          `json:"assignees"`
	Status      string                 `json:"status"`
	Priority    string                 `json:"priority"`
	DueAt       *time.Time             `json:"due_at"`
	Company     *string                `json:"company"`
	CompanyID   *string                `json:"company_id"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Events      []EventDTO             `json:"events"`
	Attachments []AttachmentDTO        `json:"attachments"`
}

// RequestListItemDTO is the list/board row: summary fields plus the include
// data (type name, team name, assignee summaries, advisory SLA).
type RequestListItemDTO struct {
	ID         uint          `json:"id"`
	Title      string        `json:"title"`
	Status     string        `json:"status"`
	Priority   string        `json:"priority"`
	TypeName   string        `json:"type_name"`
	TeamName   *string       `json:"team_name"`
	CreatorID  uint          `json:"creator_id"`
	Assignees  []AssigneeDTO `json:"assignees"`
	DueAt      *time.Time    `json:"due_at"`
	SLAMinutes *int          `json:"sla_minutes"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BoardDTO buckets list items per status lane; Lanes preserves enum order so
// clients render columns without sorting.
type BoardDTO struct {
	Lanes   []string                        `json:"lanes"`
	Columns map[string][]RequestListItemDTO `json:"columns"`
}

func ToEventDTO(e *request.Event) EventDTO {
	return EventDTO{
		ID:        e.ID(),
		ActorID:   e.ActorID(),
		Type:      string(e.Type()),
		Payload:   e.Payload(),
		CreatedAt: e.CreatedAt(),
	}
}

func ToAttachmentDTO(a *request.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:        a.ID(),
		URL:       a.URL(),
		Name:      a.Name(),
		Size:      a.Size(),
		Mime:      a.Mime(),
		CreatedAt: a.CreatedAt(),
	}
}
