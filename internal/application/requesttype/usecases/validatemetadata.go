package usecases

import (
	"context"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"orgjet/internal/domain/requesttype"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

type ValidateMetadataCommand struct {
	TypeID   uint
	Metadata map[string]interface{}
}

// ValidateMetadataResult carries advisory warnings. Valid is informational:
// request creation never consults it.
type ValidateMetadataResult struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
}

type ValidateMetadataUseCase struct {
	typeRepo requesttype.Repository
	logger   logger.Interface
}

func NewValidateMetadataUseCase(typeRepo requesttype.Repository, logger logger.Interface) *ValidateMetadataUseCase {
	return &ValidateMetadataUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *ValidateMetadataUseCase) Execute(ctx context.Context, cmd ValidateMetadataCommand) (*ValidateMetadataResult, error) {
	if cmd.TypeID == 0 {
		return nil, errors.NewValidationError("type ID is required")
	}

	rt, err := uc.typeRepo.FindByID(ctx, cmd.TypeID)
	if err != nil {
		return nil, err
	}

	if !rt.HasSchema() {
		return &ValidateMetadataResult{Valid: true, Warnings: []string{}}, nil
	}

	doc := cmd.Metadata
	if doc == nil {
		doc = map[string]interface{}{}
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewValidationError("metadata is not serializable")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(rt.Schema()),
		gojsonschema.NewBytesLoader(docJSON),
	)
	if err != nil {
		// A broken stored schema is a catalog problem, not a caller error.
		uc.logger.Warnw("failed to evaluate type schema", "type_id", cmd.TypeID, "error", err)
		return &ValidateMetadataResult{Valid: true, Warnings: []string{"type schema could not be evaluated"}}, nil
	}

	warnings := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		warnings = append(warnings, e.String())
	}

	return &ValidateMetadataResult{
		Valid:    result.Valid(),
		Warnings: warnings,
	}, nil
}
