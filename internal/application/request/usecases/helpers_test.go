package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgjet/internal/domain/request"
	vo "orgjet/internal/domain/request/valueobjects"
)

func reconstructRequest(t *testing.T, id uint, status vo.Status, creatorID uint) *request.Request {
	t.Helper()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	req, err := request.ReconstructRequest(
		id,
		"Broken projector",
		"The projector in room 3B will not power on.",
		1,
		creatorID,
		nil,
		nil,
		status,
		vo.PriorityMedium,
		nil,
		nil,
		nil,
		nil,
		now,
		now,
	)
	require.NoError(t, err)
	return req
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
