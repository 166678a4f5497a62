package request

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"orgjet/internal/application/request/usecases"
	"orgjet/internal/shared/errors"
)

type CreateRequestRequest struct {
	Title       string                 `json:"title" binding:"required,max=200"`
	Description string                 `json:"description" binding:"required,max=10000"`
	TypeID      uint                   `json:"typeId" binding:"required"`
	Priority    string                 `json:"priority,omitempty"`
	DueAt       *string                `json:"dueAt,omitempty"`
	Company     *string                `json:"company,omitempty"`
	CompanyID   *string                `json:"companyId,omitempty"`
	TeamID      *uint                  `json:"teamId,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (r *CreateRequestRequest) ToCommand(creatorID uint) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Title:       r.Title,
		Description: r.Description,
		TypeID:      r.TypeID,
		Priority:    r.Priority,
		DueAt:       r.DueAt,
		Company:     r.Company,
		CompanyID:   r.CompanyID,
		TeamID:      r.TeamID,
		Metadata:    r.Metadata,
		CreatorID:   creatorID,
	}
}

// UpdateRequestRequest is a partial patch. A field that is absent stays
// untouched; assigneeId additionally treats a blank string as "clear".
type UpdateRequestRequest struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	DueAt      *string `json:"dueAt,omitempty"`
	AssigneeID *string `json:"assigneeId,omitempty"`
}

func (r *UpdateRequestRequest) ToCommand(requestID, actorID uint) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		RequestID:  requestID,
		Status:     r.Status,
		Priority:   r.Priority,
		DueAt:      r.DueAt,
		AssigneeID: r.AssigneeID,
		ActorID:    actorID,
	}
}

// AssignRequestRequest carries the single-assign target. A null assigneeId
// unassigns.
type AssignRequestRequest struct {
	AssigneeID *uint `json:"assigneeId"`
}

type AddAssigneesRequest struct {
	UserIDs []uint `json:"userIds" binding:"required,min=1"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=10000"`
}

// uploadFilesFromForm converts multipart file headers into use-case upload
// descriptors. The returned cleanup closes every opened file and must run
// after the use case finishes reading.
func uploadFilesFromForm(c *gin.Context) ([]usecases.UploadFile, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errors.NewValidationError("invalid multipart form")
	}

	headers := form.File["files"]
	files := make([]usecases.UploadFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, errors.NewValidationError("failed to read uploaded file " + fh.Filename)
		}
		opened = append(opened, f)
		files = append(files, usecases.UploadFile{
			Name:    fh.Filename,
			Mime:    fh.Header.Get("Content-Type"),
			Size:    fh.Size,
			Content: f,
		})
	}

	return files, cleanup, nil
}
