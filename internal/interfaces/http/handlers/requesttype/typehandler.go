package requesttype

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgjet/internal/application/requesttype/usecases"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/utils"
)

type ListTypesExecutor interface {
	Execute(ctx context.Context) ([]usecases.RequestTypeDTO, error)
}

type ValidateMetadataExecutor interface {
	Execute(ctx context.Context, cmd usecases.ValidateMetadataCommand) (*usecases.ValidateMetadataResult, error)
}

type TypeHandler struct {
	listTypesUC ListTypesExecutor
	validateUC  ValidateMetadataExecutor
	logger      logger.Interface
}

func NewTypeHandler(listTypesUC ListTypesExecutor, validateUC ValidateMetadataExecutor) *TypeHandler {
	return &TypeHandler{
		listTypesUC: listTypesUC,
		validateUC:  validateUC,
		logger:      logger.NewLogger(),
	}
}

// ListTypes handles GET /types
func (h *TypeHandler) ListTypes(c *gin.Context) {
	result, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type validateMetadataRequest struct {
	Metadata map[string]interface{} `json:"metadata" binding:"required"`
}

// ValidateMetadata handles POST /types/:id/validate
func (h *TypeHandler) ValidateMetadata(c *gin.Context) {
	typeID, err := utils.ParseUintParam(c, "id", "request type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req validateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.validateUC.Execute(c.Request.Context(), usecases.ValidateMetadataCommand{
		TypeID:   typeID,
		Metadata: req.Metadata,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
