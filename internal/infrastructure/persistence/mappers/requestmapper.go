package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/biztime"
)

// RequestMapper converts between Request aggregates and persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)

	EventToModel(e *request.Event) *models.RequestEventModel
	EventToDomain(model *models.RequestEventModel) (*request.Event, error)

	AttachmentToModel(a *request.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*request.Attachment, error)

	SubscriptionToModel(s *request.Subscription) *models.SubscriptionModel
	SubscriptionToDomain(model *models.SubscriptionModel) (*request.Subscription, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:          r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		TypeID:      r.TypeID(),
		CreatorID:   r.CreatorID(),
		TeamID:      r.TeamID(),
		AssigneeID:  r.AssigneeID(),
		Status:      r.Status().String(),
		Priority:    r.Priority().String(),
		Company:     r.Company(),
		CompanyID:   r.CompanyID(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
		UpdatedAt:   r.UpdatedAt().UnixMilli(),
	}

	if r.DueAt() != nil {
		due := r.DueAt().UnixMilli()
		model.DueAt = &due
	}

	if meta := r.Metadata(); len(meta) > 0 {
		metaJSON, _ := json.Marshal(meta)
		model.Metadata = metaJSON
	}

	return model
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request metadata (id=%d): %w", model.ID, err)
		}
	}

	var dueAt *time.Time
	if model.DueAt != nil {
		t := biztime.FromMillis(*model.DueAt)
		dueAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.Title,
		model.Description,
		model.TypeID,
		model.CreatorID,
		model.TeamID,
		model.AssigneeID,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		dueAt,
		model.Company,
		model.CompanyID,
		metadata,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *RequestMapperImpl) EventToModel(e *request.Event) *models.RequestEventModel {
	return &models.RequestEventModel{
		ID:        e.ID(),
		RequestID: e.RequestID(),
		ActorID:   e.ActorID(),
		EventType: string(e.Type()),
		Payload:   []byte(e.Payload()),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) EventToDomain(model *models.RequestEventModel) (*request.Event, error) {
	return request.ReconstructEvent(
		model.ID,
		model.RequestID,
		model.ActorID,
		request.EventType(model.EventType),
		json.RawMessage(model.Payload),
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m *RequestMapperImpl) AttachmentToModel(a *request.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		RequestID:  a.RequestID(),
		UploaderID: a.UploaderID(),
		URL:        a.URL(),
		Name:       a.Name(),
		Size:       a.Size(),
		Mime:       a.Mime(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*request.Attachment, error) {
	return request.ReconstructAttachment(
		model.ID,
		model.RequestID,
		model.UploaderID,
		model.URL,
		model.Name,
		model.Size,
		model.Mime,
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m *RequestMapperImpl) SubscriptionToModel(s *request.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:        s.ID(),
		RequestID: s.RequestID(),
		UserID:    s.UserID(),
		CreatedAt: s.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) SubscriptionToDomain(model *models.SubscriptionModel) (*request.Subscription, error) {
	return request.ReconstructSubscription(
		model.ID,
		model.RequestID,
		model.UserID,
		biztime.FromMillis(model.CreatedAt),
	)
}
