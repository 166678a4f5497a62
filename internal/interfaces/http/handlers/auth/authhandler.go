package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgjet/internal/application/identity/usecases"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/utils"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type GetMeExecutor interface {
	Execute(ctx context.Context, query usecases.GetMeQuery) (*usecases.UserDTO, error)
}

type AuthHandler struct {
	loginUC LoginExecutor
	getMeUC GetMeExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor, getMeUC GetMeExecutor) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		getMeUC: getMeUC,
		logger:  logger.NewLogger(),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  usecases.UserDTO `json:"user"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", loginResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// GetMe handles GET /me
func (h *AuthHandler) GetMe(c *gin.Context) {
	actorID, _ := utils.ActorFromContext(c)

	result, err := h.getMeUC.Execute(c.Request.Context(), usecases.GetMeQuery{UserID: actorID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
