package usecases

import (
	"context"

	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type UserDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	TeamID   *uint   `json:"team_id"`
	TeamName *string `json:"team_name"`
}

func toUserDTO(u *user.User, teamName *string) UserDTO {
	return UserDTO{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     u.Role(),
		TeamID:   u.TeamID(),
		TeamName: teamName,
	}
}

type GetMeQuery struct {
	UserID uint
}

type GetMeUseCase struct {
	userRepo user.Repository
	teamRepo team.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, teamRepo team.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo: userRepo,
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, query GetMeQuery) (*UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	var teamName *string
	if u.TeamID() != nil {
		if t, err := uc.teamRepo.FindByID(ctx, *u.TeamID()); err == nil {
			name := t.Name()
			teamName = &name
		}
	}

	out := toUserDTO(u, teamName)
	return &out, nil
}
