package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orgjet/internal/domain/request"
	"orgjet/internal/infrastructure/persistence/mappers"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, att *request.Attachment) error {
	model := r.mapper.AttachmentToModel(att)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return att.SetID(model.ID)
}

func (r *AttachmentRepository) FindByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	var rows []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	out := make([]*request.Attachment, 0, len(rows))
	for i := range rows {
		att, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, nil
}

func (r *AttachmentRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("request_id = ?", requestID).Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}
