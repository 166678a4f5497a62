package usecases

import (
	"context"

	"orgjet/internal/application/request/dto"
	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/errors"
	"orgjet/internal/shared/logger"
)

// ListRequestsQuery holds the optional filters. All present filters AND
// together; Status is a CSV OR-set; Mine widens to requests the actor is
// assigned to through either assignment mechanism.
type ListRequestsQuery struct {
	Status  string
	Team    string
	Type    string
	Search  string
	Mine    bool
	ActorID uint
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	loader      includeLoader
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	typeRepo requesttype.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	assigneeRepo request.AssigneeRepository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
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

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	reqs, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	return uc.loader.buildListItems(ctx, reqs)
}

func buildFilter(query ListRequestsQuery) (request.Filter, error) {
	filter := request.Filter{
		TeamName: query.Team,
		TypeName: query.Type,
		Search:   query.Search,
	}

	if query.Status != "" {
		statuses, err := vo.ParseStatusList(query.Status)
		if err != nil {
			return request.Filter{}, errors.NewValidationError(err.Error())
		}
		for _, s := range statuses {
			filter.Statuses = append(filter.Statuses, s.String())
		}
	}

	if query.Mine {
		if query.ActorID == 0 {
			return request.Filter{}, errors.NewValidationError("mine filter requires an authenticated actor")
		}
		filter.MineUserID = query.ActorID
	}

	return filter, nil
}
