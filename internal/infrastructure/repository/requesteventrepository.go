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

type RequestEventRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestEventRepository(db *gorm.DB) *RequestEventRepository {
	return &RequestEventRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestEventRepository) Save(ctx context.Context, event *request.Event) error {
	model := r.mapper.EventToModel(event)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request event: %w", err)
	}

	return event.SetID(model.ID)
}

// FindByRequestID returns the activity log in append order; id breaks ties
// for events sharing a millisecond.
func (r *RequestEventRepository) FindByRequestID(ctx context.Context, requestID uint) ([]*request.Event, error) {
	var rows []models.RequestEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load request events: %w", err)
	}

	out := make([]*request.Event, 0, len(rows))
	for i := range rows {
		ev, err := r.mapper.EventToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *RequestEventRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("request_id = ?", requestID).Delete(&models.RequestEventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete request events: %w", err)
	}
	return nil
}
