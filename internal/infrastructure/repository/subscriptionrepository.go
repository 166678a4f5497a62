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

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *request.Subscription) error {
	model := r.mapper.SubscriptionToModel(sub)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return sub.SetID(model.ID)
}

func (r *SubscriptionRepository) Remove(ctx context.Context, requestID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, requestID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.SubscriptionModel{}).
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return count > 0, nil
}

func (r *SubscriptionRepository) ListUserIDs(ctx context.Context, requestID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.SubscriptionModel{}).
		Where("request_id = ?", requestID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return ids, nil
}

func (r *SubscriptionRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("request_id = ?", requestID).Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	return nil
}
