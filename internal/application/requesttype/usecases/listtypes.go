package usecases

import (
	"context"
	"encoding/json"
	"time"

	"orgjet/internal/domain/requesttype"
	"orgjet/internal/shared/logger"
)

type RequestTypeDTO struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Schema            json.RawMessage `json:"schema"`
	DefaultSLAMinutes *int            `json:"default_sla_minutes"`
	CreatedAt         time.Time       `json:"created_at"`
}

type ListTypesUseCase struct {
	typeRepo requesttype.Repository
	logger   logger.Interface
}

func NewListTypesUseCase(typeRepo requesttype.Repository, logger logger.Interface) *ListTypesUseCase {
	return &ListTypesUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *ListTypesUseCase) Execute(ctx context.Context) ([]RequestTypeDTO, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list request types", "error", err)
		return nil, err
	}

	out := make([]RequestTypeDTO, 0, len(types))
	for _, t := range types {
		out = append(out, RequestTypeDTO{
			ID:                t.ID(),
			Name:              t.Name(),
			Schema:            t.Schema(),
			DefaultSLAMinutes: t.DefaultSLAMinutes(),
			CreatedAt:         t.CreatedAt(),
		})
	}
	return out, nil
}
