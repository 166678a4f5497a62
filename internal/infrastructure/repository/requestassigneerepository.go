package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/db"
)

type RequestAssigneeRepository struct {
	db *gorm.DB
}

func NewRequestAssigneeRepository(db *gorm.DB) *RequestAssigneeRepository {
	return &RequestAssigneeRepository{db: db}
}

func (r *RequestAssigneeRepository) Add(ctx context.Context, requestID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.RequestAssigneeModel{RequestID: requestID, UserID: userID}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to add assignee: %w", err)
	}
	return nil
}

func (r *RequestAssigneeRepository) Remove(ctx context.Context, requestID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Delete(&models.RequestAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove assignee: %w", err)
	}
	return nil
}

func (r *RequestAssigneeRepository) ListUserIDs(ctx context.Context, requestID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.RequestAssigneeModel{}).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	return ids, nil
}

func (r *RequestAssigneeRepository) ListByRequestIDs(ctx context.Context, requestIDs []uint) (map[uint][]uint, error) {
	out := make(map[uint][]uint, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}

	var rows []models.RequestAssigneeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}

	for _, row := range rows {
		out[row.RequestID] = append(out[row.RequestID], row.UserID)
	}
	return out, nil
}

func (r *RequestAssigneeRepository) Exists(ctx context.Context, requestID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.RequestAssigneeModel{}).
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignee: %w", err)
	}
	return count > 0, nil
}

func (r *RequestAssigneeRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("request_id = ?", requestID).Delete(&models.RequestAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignees: %w", err)
	}
	return nil
}
