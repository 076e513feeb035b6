package ticket

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
)

// CreateTicketRequest is the JSON body accepted by POST /api/tickets when the
// client does not upload files. Attachments arrive pre-encoded.
type CreateTicketRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description" binding:"required"`
	Category    string                  `json:"category" binding:"required"`
	Priority    string                  `json:"priority" binding:"required"`
	Attachments []CreateAttachmentInput `json:"attachments"`
}

type CreateAttachmentInput struct {
	Name     string `json:"name"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	attachments := make([]usecases.AttachmentInput, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, usecases.AttachmentInput{
			Name:     a.Name,
			Data:     a.Data,
			MimeType: a.MimeType,
		})
	}
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		OwnerID:     ownerID,
		Attachments: attachments,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

// parseMultipartCreate reads the submission form. Files come in under the
// "attachments" field and are stored base64 encoded.
func parseMultipartCreate(c *gin.Context, uploadCfg *config.UploadConfig) (*CreateTicketRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form")
	}

	req := &CreateTicketRequest{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		Category:    formValue(form, "category"),
		Priority:    formValue(form, "priority"),
	}

	files := form.File["attachments"]
	if len(files) > uploadCfg.MaxFiles {
		return nil, errors.NewValidationError(fmt.Sprintf("at most %d attachments are allowed", uploadCfg.MaxFiles))
	}

	for _, fh := range files {
		attachment, err := readAttachment(fh, uploadCfg.MaxFileBytes)
		if err != nil {
			return nil, err
		}
		req.Attachments = append(req.Attachments, *attachment)
	}

	return req, nil
}

func readAttachment(fh *multipart.FileHeader, maxBytes int64) (*CreateAttachmentInput, error) {
	if fh.Size > maxBytes {
		return nil, errors.NewPayloadTooLargeError(fmt.Sprintf("attachment %q exceeds the size limit", fh.Filename))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.NewInternalError("failed to read uploaded file")
	}
	defer f.Close()

	// LimitReader guards against a lying Content-Length in the part header.
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, errors.NewInternalError("failed to read uploaded file")
	}
	if int64(len(data)) > maxBytes {
		return nil, errors.NewPayloadTooLargeError(fmt.Sprintf("attachment %q exceeds the size limit", fh.Filename))
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &CreateAttachmentInput{
		Name:     fh.Filename,
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}
