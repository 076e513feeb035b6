package ticket

import "fmt"

const (
	// MaxAttachments bounds the number of files accepted per ticket.
	MaxAttachments = 5
	// MaxAttachmentBytes bounds the decoded size of a single file (5MB).
	MaxAttachmentBytes = 5 * 1024 * 1024
)

// Attachment is an uploaded file stored inline with the ticket row. Data is
// the base64 encoding of the original bytes.
type Attachment struct {
	Name     string `json:"name"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

func NewAttachment(name, data, mimeType string) (Attachment, error) {
	if len(name) == 0 {
		return Attachment{}, fmt.Errorf("attachment name is required")
	}
	if len(data) == 0 {
		return Attachment{}, fmt.Errorf("attachment data is required")
	}
	return Attachment{
		Name:     name,
		Data:     data,
		MimeType: mimeType,
	}, nil
}
