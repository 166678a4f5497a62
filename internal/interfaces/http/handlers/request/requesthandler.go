package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orgjet/internal/application/request/usecases"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC  usecases.CreateRequestExecutor
	updateRequestUC  usecases.UpdateRequestExecutor
	assignRequestUC  usecases.AssignRequestExecutor
	addAssigneesUC   usecases.AddAssigneesExecutor
	removeAssigneeUC usecases.RemoveAssigneeExecutor
	addCommentUC     usecases.AddCommentExecutor
	createPostUC     usecases.CreatePostExecutor
	uploadUC         usecases.UploadAttachmentsExecutor
	deleteRequestUC  usecases.DeleteRequestExecutor
	getRequestUC     usecases.GetRequestExecutor
	listRequestsUC   usecases.ListRequestsExecutor
	subscribeUC      usecases.SubscribeExecutor
	unsubscribeUC    usecases.UnsubscribeExecutor
	logger           logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	assignRequestUC usecases.AssignRequestExecutor,
	addAssigneesUC usecases.AddAssigneesExecutor,
	removeAssigneeUC usecases.RemoveAssigneeExecutor,
	addCommentUC usecases.AddCommentExecutor,
	createPostUC usecases.CreatePostExecutor,
	uploadUC usecases.UploadAttachmentsExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	subscribeUC usecases.SubscribeExecutor,
	unsubscribeUC usecases.UnsubscribeExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC:  createRequestUC,
		updateRequestUC:  updateRequestUC,
		assignRequestUC:  assignRequestUC,
		addAssigneesUC:   addAssigneesUC,
		removeAssigneeUC: removeAssigneeUC,
		addCommentUC:     addCommentUC,
		createPostUC:     createPostUC,
		uploadUC:         uploadUC,
		deleteRequestUC:  deleteRequestUC,
		getRequestUC:     getRequestUC,
		listRequestsUC:   listRequestsUC,
		subscribeUC:      subscribeUC,
		unsubscribeUC:    unsubscribeUC,
		logger:           logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	result, err := h.createRequestUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequests handles GET /requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	actorID, _ := utils.ActorFromContext(c)

	query := usecases.ListRequestsQuery{
		Status:  c.Query("status"),
		Team:    c.Query("team"),
		Type:    c.Query("type"),
		Search:  c.Query("search"),
		Mine:    c.Query("mine") == "true" || c.Query("mine") == "1",
		ActorID: actorID,
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRequest handles PATCH /requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	result, err := h.updateRequestUC.Execute(c.Request.Context(), req.ToCommand(requestID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// DeleteRequest handles DELETE /requests/:id
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := utils.ActorFromContext(c)
	cmd := usecases.DeleteRequestCommand{
		RequestID: requestID,
		ActorID:   actorID,
		ActorRole: actorRole,
	}

	if _, err := h.deleteRequestUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddComment handles POST /requests/:id/comment
func (h *RequestHandler) AddComment(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.AddCommentCommand{
		RequestID: requestID,
		Body:      req.Body,
		ActorID:   actorID,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// AssignRequest handles POST /requests/:id/assign
func (h *RequestHandler) AssignRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.AssignRequestCommand{
		RequestID:  requestID,
		AssigneeID: req.AssigneeID,
		ActorID:    actorID,
	}

	result, err := h.assignRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request assignment updated", result)
}

// AddAssignees handles POST /requests/:id/assignees
func (h *RequestHandler) AddAssignees(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAssigneesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.AddAssigneesCommand{
		RequestID: requestID,
		UserIDs:   req.UserIDs,
		ActorID:   actorID,
	}

	result, err := h.addAssigneesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignees added", result)
}

// RemoveAssignee handles DELETE /requests/:id/assignees/:uid
func (h *RequestHandler) RemoveAssignee(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "uid", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.RemoveAssigneeCommand{
		RequestID: requestID,
		UserID:    userID,
		ActorID:   actorID,
	}

	result, err := h.removeAssigneeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignee removed", result)
}

// UploadAttachments handles POST /requests/:id/attachments
func (h *RequestHandler) UploadAttachments(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	files, cleanup, err := uploadFilesFromForm(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer cleanup()

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.UploadAttachmentsCommand{
		RequestID: requestID,
		Files:     files,
		ActorID:   actorID,
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachments uploaded")
}

// CreatePost handles POST /requests/:id/post
func (h *RequestHandler) CreatePost(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	files, cleanup, err := uploadFilesFromForm(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer cleanup()

	var text *string
	if v, ok := c.GetPostForm("text"); ok {
		text = &v
	}

	actorID, _ := utils.ActorFromContext(c)
	cmd := usecases.CreatePostCommand{
		RequestID: requestID,
		Text:      text,
		Files:     files,
		ActorID:   actorID,
	}

	result, err := h.createPostUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Post created")
}

// Subscribe handles POST /requests/:id/subscribe
func (h *RequestHandler) Subscribe(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	result, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		RequestID: requestID,
		ActorID:   actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscribed", result)
}

// Unsubscribe handles DELETE /requests/:id/subscribe
func (h *RequestHandler) Unsubscribe(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.ActorFromContext(c)
	result, err := h.unsubscribeUC.Execute(c.Request.Context(), usecases.UnsubscribeCommand{
		RequestID: requestID,
		ActorID:   actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unsubscribed", result)
}
