package usecases

import (
	"context"

	"orgjet/internal/application/request/dto"
	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/logger"
)

type BoardQuery struct {
	Team string
}

type GetBoardUseCase struct {
	requestRepo request.Repository
	loader      includeLoader
	logger      logger.Interface
}

func NewGetBoardUseCase(
	requestRepo request.Repository,
	typeRepo requesttype.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	assigneeRepo request.AssigneeRepository,
	logger logger.Interface,
) *GetBoardUseCase {
	return &GetBoardUseCase{
		requestRepo: requestRepo,
		loader: includeLoader{
			typeRepo:     typeRepo,
			teamRepo:     teamRepo,
			userRepo:     userRepo,
			assigneeRepo: assigneeRepo,
			logger:       logger,
		},
		logger: logger,
	}
}

// Execute buckets requests per status lane. Every lane appears in enum order
// even when empty so board columns render stably.
func (uc *GetBoardUseCase) Execute(ctx context.Context, query BoardQuery) (*dto.BoardDTO, error) {
	reqs, err := uc.requestRepo.List(ctx, request.Filter{TeamName: query.Team})
	if err != nil {
		uc.logger.Errorw("failed to load board requests", "error", err)
		return nil, err
	}

	items, err := uc.loader.buildListItems(ctx, reqs)
	if err != nil {
		return nil, err
	}

	board := &dto.BoardDTO{
		Lanes:   make([]string, 0, len(vo.Lanes())),
		Columns: make(map[string][]dto.RequestListItemDTO, len(vo.Lanes())),
	}
	for _, lane := range vo.Lanes() {
		board.Lanes = append(board.Lanes, lane.String())
		board.Columns[lane.String()] = []dto.RequestListItemDTO{}
	}
	for _, item := range items {
		board.Columns[item.Status] = append(board.Columns[item.Status], item)
	}

	return board, nil
}
