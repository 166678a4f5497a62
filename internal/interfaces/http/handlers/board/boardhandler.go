package board

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orgjet/internal/application/request/usecases"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/utils"
)

type BoardHandler struct {
	getBoardUC usecases.GetBoardExecutor
	logger     logger.Interface
}

func NewBoardHandler(getBoardUC usecases.GetBoardExecutor) *BoardHandler {
	return &BoardHandler{
		getBoardUC: getBoardUC,
		logger:     logger.NewLogger(),
	}
}

// GetBoard handles GET /board
func (h *BoardHandler) GetBoard(c *gin.Context) {
	result, err := h.getBoardUC.Execute(c.Request.Context(), usecases.BoardQuery{
		Team: c.Query("team"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
