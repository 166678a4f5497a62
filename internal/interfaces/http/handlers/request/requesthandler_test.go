package request

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdto "orgjet/internal/application/request/dto"
	"orgjet/internal/application/request/usecases"
	"orgjet/internal/interfaces/http/handlers/testutil"
	"orgjet/internal/shared/errors"
)

type mockCreateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateRequestCommand) (*usecases.CreateRequestResult, error)
}

func (m *mockCreateExecutor) Execute(ctx context.Context, cmd usecases.CreateRequestCommand) (*usecases.CreateRequestResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateRequestCommand) (*usecases.UpdateRequestResult, error)
}

func (m *mockUpdateExecutor) Execute(ctx context.Context, cmd usecases.UpdateRequestCommand) (*usecases.UpdateRequestResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteRequestCommand) (*usecases.DeleteRequestResult, error)
}

func (m *mockDeleteExecutor) Execute(ctx context.Context, cmd usecases.DeleteRequestCommand) (*usecases.DeleteRequestResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetRequestQuery) (*appdto.RequestDTO, error)
}

func (m *mockGetExecutor) Execute(ctx context.Context, query usecases.GetRequestQuery) (*appdto.RequestDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListRequestsQuery) ([]appdto.RequestListItemDTO, error)
}

func (m *mockListExecutor) Execute(ctx context.Context, query usecases.ListRequestsQuery) ([]appdto.RequestListItemDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

func newTestHandler(opts ...func(*RequestHandler)) *RequestHandler {
	h := NewRequestHandler(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func TestRequestHandler_CreateRequest(t *testing.T) {
	t.Run("creates request and returns 201", func(t *testing.T) {
		var gotCmd usecases.CreateRequestCommand
		handler := newTestHandler(func(h *RequestHandler) {
			h.createRequestUC = &mockCreateExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.CreateRequestCommand) (*usecases.CreateRequestResult, error) {
					gotCmd = cmd
					return &usecases.CreateRequestResult{RequestID: 42, Status: "NEW", Priority: "HIGH"}, nil
				},
			}
		})

		body := map[string]interface{}{
			"title":       "Projector broken",
			"description": "Room 3B",
			"typeId":      1,
			"priority":    "HIGH",
		}
		c, w := testutil.NewTestContext(http.MethodPost, "/requests", body)
		testutil.SetAuthContext(c, 7, "REQUESTER")

		handler.CreateRequest(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(7), gotCmd.CreatorID)
		assert.Equal(t, "HIGH", gotCmd.Priority)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("missing title fails binding", func(t *testing.T) {
		handler := newTestHandler()

		body := map[string]interface{}{"description": "d", "typeId": 1}
		c, w := testutil.NewTestContext(http.MethodPost, "/requests", body)
		testutil.SetAuthContext(c, 7, "REQUESTER")

		handler.CreateRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("use case validation error maps to 400", func(t *testing.T) {
		handler := newTestHandler(func(h *RequestHandler) {
			h.createRequestUC = &mockCreateExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.CreateRequestCommand) (*usecases.CreateRequestResult, error) {
					return nil, errors.NewValidationError("unknown request type")
				},
			}
		})

		body := map[string]interface{}{"title": "t", "description": "d", "typeId": 99}
		c, w := testutil.NewTestContext(http.MethodPost, "/requests", body)
		testutil.SetAuthContext(c, 7, "REQUESTER")

		handler.CreateRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "unknown request type", resp.Error.Message)
	})
}

func TestRequestHandler_GetRequest(t *testing.T) {
	t.Run("returns request detail", func(t *testing.T) {
		handler := newTestHandler(func(h *RequestHandler) {
			h.getRequestUC = &mockGetExecutor{
				ExecuteFunc: func(ctx context.Context, query usecases.GetRequestQuery) (*appdto.RequestDTO, error) {
					assert.Equal(t, uint(42), query.RequestID)
					return &appdto.RequestDTO{ID: 42, Title: "Projector broken", Status: "NEW"}, nil
				},
			}
		})

		c, w := testutil.NewTestContext(http.MethodGet, "/requests/42", nil)
		testutil.SetAuthContext(c, 7, "REQUESTER")
		testutil.SetURLParam(c, "id", "42")

		handler.GetRequest(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var dto appdto.RequestDTO
		require.NoError(t, json.Unmarshal(resp.Data, &dto))
		assert.Equal(t, uint(42), dto.ID)
	})

	t.Run("unknown request maps to 404", func(t *testing.T) {
		handler := newTestHandler(func(h *RequestHandler) {
			h.getRequestUC = &mockGetExecutor{
				ExecuteFunc: func(ctx context.Context, query usecases.GetRequestQuery) (*appdto.RequestDTO, error) {
					return nil, errors.NewNotFoundError("request not found")
				},
			}
		})

		c, w := testutil.NewTestContext(http.MethodGet, "/requests/99", nil)
		testutil.SetURLParam(c, "id", "99")

		handler.GetRequest(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id maps to 400", func(t *testing.T) {
		handler := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/requests/abc", nil)
		testutil.SetURLParam(c, "id", "abc")

		handler.GetRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestHandler_ListRequests(t *testing.T) {
	t.Run("query params flow into the query", func(t *testing.T) {
		var gotQuery usecases.ListRequestsQuery
		handler := newTestHandler(func(h *RequestHandler) {
			h.listRequestsUC = &mockListExecutor{
				ExecuteFunc: func(ctx context.Context, query usecases.ListRequestsQuery) ([]appdto.RequestListItemDTO, error) {
					gotQuery = query
					return []appdto.RequestListItemDTO{}, nil
				},
			}
		})

		c, w := testutil.NewTestContext(http.MethodGet, "/requests", nil)
		testutil.SetAuthContext(c, 7, "ASSIGNEE")
		testutil.SetQueryParams(c, map[string]string{
			"status": "NEW,TRIAGE",
			"team":   "Facilities",
			"mine":   "true",
		})

		handler.ListRequests(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "NEW,TRIAGE", gotQuery.Status)
		assert.Equal(t, "Facilities", gotQuery.Team)
		assert.True(t, gotQuery.Mine)
		assert.Equal(t, uint(7), gotQuery.ActorID)
	})
}

func TestRequestHandler_UpdateRequest(t *testing.T) {
	t.Run("blank assigneeId reaches the command", func(t *testing.T) {
		var gotCmd usecases.UpdateRequestCommand
		handler := newTestHandler(func(h *RequestHandler) {
			h.updateRequestUC = &mockUpdateExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateRequestCommand) (*usecases.UpdateRequestResult, error) {
					gotCmd = cmd
					return &usecases.UpdateRequestResult{RequestID: cmd.RequestID}, nil
				},
			}
		})

		body := map[string]interface{}{"status": "DONE", "assigneeId": ""}
		c, w := testutil.NewTestContext(http.MethodPatch, "/requests/42", body)
		testutil.SetAuthContext(c, 7, "COORDINATOR")
		testutil.SetURLParam(c, "id", "42")

		handler.UpdateRequest(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), gotCmd.RequestID)
		require.NotNil(t, gotCmd.Status)
		assert.Equal(t, "DONE", *gotCmd.Status)
		require.NotNil(t, gotCmd.AssigneeID)
		assert.Equal(t, "", *gotCmd.AssigneeID)
		assert.Nil(t, gotCmd.Priority)
	})
}

func TestRequestHandler_DeleteRequest(t *testing.T) {
	t.Run("delete returns 204", func(t *testing.T) {
		var gotCmd usecases.DeleteRequestCommand
		handler := newTestHandler(func(h *RequestHandler) {
			h.deleteRequestUC = &mockDeleteExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.DeleteRequestCommand) (*usecases.DeleteRequestResult, error) {
					gotCmd = cmd
					return &usecases.DeleteRequestResult{RequestID: cmd.RequestID}, nil
				},
			}
		})

		c, w := testutil.NewTestContext(http.MethodDelete, "/requests/42", nil)
		testutil.SetAuthContext(c, 4, "ADMIN")
		testutil.SetURLParam(c, "id", "42")

		handler.DeleteRequest(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(42), gotCmd.RequestID)
		assert.Equal(t, "ADMIN", gotCmd.ActorRole)
	})

	t.Run("non-owner maps to 403", func(t *testing.T) {
		handler := newTestHandler(func(h *RequestHandler) {
			h.deleteRequestUC = &mockDeleteExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.DeleteRequestCommand) (*usecases.DeleteRequestResult, error) {
					return nil, errors.NewForbiddenError("only the creator or an admin can delete a request")
				},
			}
		})

		c, w := testutil.NewTestContext(http.MethodDelete, "/requests/42", nil)
		testutil.SetAuthContext(c, 8, "ASSIGNEE")
		testutil.SetURLParam(c, "id", "42")

		handler.DeleteRequest(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
