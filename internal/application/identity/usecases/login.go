package usecases

import (
	"context"

	"orgjet/internal/domain/user"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  UserDTO
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same answer for unknown user and wrong password.
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to load user", "error", err)
		return nil, err
	}

	if !u.CheckPassword(cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Issue(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token: token,
		User:  toUserDTO(u, nil),
	}, nil
}
