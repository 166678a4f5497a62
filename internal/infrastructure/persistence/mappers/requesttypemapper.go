package mappers

import (
	"encoding/json"

	"orgjet/internal/domain/requesttype"
	"orgjet/internal/infrastructure/persistence/models"
	"orgjet/internal/shared/biztime"
)

type RequestTypeMapper interface {
	ToModel(rt *requesttype.RequestType) *models.RequestTypeModel
	ToDomain(model *models.RequestTypeModel) (*requesttype.RequestType, error)
}

type RequestTypeMapperImpl struct{}

func NewRequestTypeMapper() RequestTypeMapper {
	return &RequestTypeMapperImpl{}
}

func (m *RequestTypeMapperImpl) ToModel(rt *requesttype.RequestType) *models.RequestTypeModel {
	return &models.RequestTypeModel{
		ID:                rt.ID(),
		Name:              rt.Name(),
		Schema:            []byte(rt.Schema()),
		DefaultSLAMinutes: rt.DefaultSLAMinutes(),
		CreatedAt:         rt.CreatedAt().UnixMilli(),
		UpdatedAt:         rt.UpdatedAt().UnixMilli(),
	}
}

func (m *RequestTypeMapperImpl) ToDomain(model *models.RequestTypeModel) (*requesttype.RequestType, error) {
	return requesttype.ReconstructRequestType(
		model.ID,
		model.Name,
		json.RawMessage(model.Schema),
		model.DefaultSLAMinutes,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
