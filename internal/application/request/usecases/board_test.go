package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
)

func TestGetBoardUseCase_Execute_LanesInEnumOrder(t *testing.T) {
	reqNew := reconstructRequest(t, 1, vo.StatusNew, 7)
	reqDone := reconstructRequest(t, 2, vo.StatusDone, 7)

	mockRepo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
			return []*request.Request{reqNew, reqDone}, nil
		},
	}

	useCase := NewGetBoardUseCase(mockRepo, &mockTypeRepository{}, &mockTeamRepository{}, &mockUserRepository{}, &mockAssigneeRepository{}, &mockLogger{})
	board, err := useCase.Execute(context.Background(), BoardQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"NEW", "TRIAGE", "ASSIGNED", "IN_PROGRESS", "BLOCKED", "REVIEW", "DONE", "CANCELLED"}, board.Lanes)

	// Every lane is present even when empty.
	require.Len(t, board.Columns, 8)
	assert.Len(t, board.Columns["NEW"], 1)
	assert.Len(t, board.Columns["DONE"], 1)
	assert.Empty(t, board.Columns["BLOCKED"])
	assert.NotNil(t, board.Columns["BLOCKED"])
}

func TestGetBoardUseCase_Execute_TeamFilterPassedThrough(t *testing.T) {
	var captured request.Filter
	mockRepo := &mockRequestRepository{
		ListFunc: func(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
			captured = filter
			return nil, nil
		},
	}

	useCase := NewGetBoardUseCase(mockRepo, &mockTypeRepository{}, &mockTeamRepository{}, &mockUserRepository{}, &mockAssigneeRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), BoardQuery{Team: "Facilities"})

	require.NoError(t, err)
	assert.Equal(t, "Facilities", captured.TeamName)
}
