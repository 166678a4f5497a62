package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orgjet/internal/domain/request"
	"orgjet/internal/infrastructure/persistence/mappers"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/db"
	"orgjet/internal/shared/errors"
)

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared pointer fields (assignee, due date) write NULL
	// instead of being skipped as zero values.
	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestModel{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.TeamName != "" {
		query = query.Where(
			"team_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.TeamModel{}).Select("id").Where("name = ?", filter.TeamName),
		)
	}
	if filter.TypeName != "" {
		query = query.Where(
			"type_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.RequestTypeModel{}).Select("id").Where("name = ?", filter.TypeName),
		)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.MineUserID != 0 {
		// OR of the legacy single-assignee column and join membership. The
		// subquery keeps each request to a single row.
		query = query.Where(
			"assignee_id = ? OR id IN (?)",
			filter.MineUserID,
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.RequestAssigneeModel{}).Select("request_id").Where("user_id = ?", filter.MineUserID),
		)
	}

	var rows []models.RequestModel
	if err := query.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	out := make([]*request.Request, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("request not found")
	}
	return nil
}
