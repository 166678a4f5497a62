package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orgjet/internal/domain/requesttype"
	"orgjet/internal/infrastructure/persistence/mappers"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/db"
	"orgjet/internal/shared/errors"
)

type RequestTypeRepository struct {
	db     *gorm.DB
	mapper mappers.RequestTypeMapper
}

func NewRequestTypeRepository(db *gorm.DB) *RequestTypeRepository {
	return &RequestTypeRepository{
		db:     db,
		mapper: mappers.NewRequestTypeMapper(),
	}
}

func (r *RequestTypeRepository) Save(ctx context.Context, rt *requesttype.RequestType) error {
	model := r.mapper.ToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request type: %w", err)
	}

	return rt.SetID(model.ID)
}

func (r *RequestTypeRepository) FindByID(ctx context.Context, id uint) (*requesttype.RequestType, error) {
	var model models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request type not found")
		}
		return nil, fmt.Errorf("failed to find request type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestTypeRepository) FindByName(ctx context.Context, name string) (*requesttype.RequestType, error) {
	var model models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request type not found")
		}
		return nil, fmt.Errorf("failed to find request type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestTypeRepository) List(ctx context.Context) ([]*requesttype.RequestType, error) {
	var rows []models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list request types: %w", err)
	}

	out := make([]*requesttype.RequestType, 0, len(rows))
	for i := range rows {
		rt, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}
