package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orgjet/internal/domain/team"
	"orgjet/internal/infrastructure/persistence/mappers"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/db"
	"orgjet/internal/shared/errors"
)

type TeamRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *TeamRepository) Save(ctx context.Context, t *team.Team) error {
	model := r.mapper.TeamToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return r.mapper.TeamToDomain(&model)
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (*team.Team, error) {
	var model models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return r.mapper.TeamToDomain(&model)
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	var rows []models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	out := make([]*team.Team, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.TeamToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
