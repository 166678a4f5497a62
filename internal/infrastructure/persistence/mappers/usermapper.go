package mappers

import (
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/biztime"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)

	TeamToModel(t *team.Team) *models.TeamModel
	TeamToDomain(model *models.TeamModel) (*team.Team, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		TeamID:       u.TeamID(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.Role,
		model.TeamID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) TeamToModel(t *team.Team) *models.TeamModel {
	return &models.TeamModel{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) TeamToDomain(model *models.TeamModel) (*team.Team, error) {
	return team.ReconstructTeam(
		model.ID,
		model.Name,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
