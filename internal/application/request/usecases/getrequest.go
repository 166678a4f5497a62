package usecases

import (
	"context"

	"orgjet/internal/application/request/dto"
	"orgjet/internal/domain/request"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID uint
}

type GetRequestUseCase struct {
	requestRepo    request.Repository
	eventRepo      request.EventRepository
	attachmentRepo request.AttachmentRepository
	loader         includeLoader
	logger         logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	eventRepo request.EventRepository,
	attachmentRepo request.AttachmentRepository,
	typeRepo requesttype.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	assigneeRepo request.AssigneeRepository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		attachmentRepo: attachmentRepo,
		loader: includeLoader{
			typeRepo:     typeRepo,
			teamRepo:     teamRepo,
			userRepo:     userRepo,
			assigneeRepo: assigneeRepo,
			logger:       logger,
		},
		logger: logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.FindByID(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}

	// Events come back in append order (created_at, then id for same-stamp
	// entries) so the activity log reads top to bottom.
	events, err := uc.eventRepo.FindByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request events", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	attachments, err := uc.attachmentRepo.FindByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "request_id", query.RequestID, "error", err)
		return nil, err
	}

	items, err := uc.loader.buildListItems(ctx, []*request.Request{req})
	if err != nil {
		return nil, err
	}
	include := items[0]

	out := &dto.RequestDTO{
		ID:          req.ID(),
		Title:       req.Title(),
		Description: req.Description(),
		TypeID:      req.TypeID(),
		TypeName:    include.TypeName,
		TeamName:    include.TeamName,
		CreatorID:   req.CreatorID(),
		AssigneeID:  req.AssigneeID(),
		Assignees:   include.Assignees,
		Status:      req.Status().String(),
		Priority:    req.Priority().String(),
		DueAt:       req.DueAt(),
		Company:     req.Company(),
		CompanyID:   req.CompanyID(),
		Metadata:    req.Metadata(),
		CreatedAt:   req.CreatedAt(),
		UpdatedAt:   req.UpdatedAt(),
		Events:      make([]dto.EventDTO, 0, len(events)),
		Attachments: make([]dto.AttachmentDTO, 0, len(attachments)),
	}
	for _, ev := range events {
		out.Events = append(out.Events, dto.ToEventDTO(ev))
	}
	for _, att := range attachments {
		out.Attachments = append(out.Attachments, dto.ToAttachmentDTO(att))
	}

	return out, nil
}
