package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// AttachmentDTO mirrors the stored attachment shape.
type AttachmentDTO struct {
	Name     string `json:"name"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// NoteDTO mirrors the stored note shape.
type NoteDTO struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// TicketDTO is the API representation of a ticket.
type TicketDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	UserID      uint            `json:"userId"`
	Attachments []AttachmentDTO `json:"attachments"`
	Notes       []NoteDTO       `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTicketDTO converts a ticket domain entity to its API representation.
func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			Name:     a.Name,
			Data:     a.Data,
			MimeType: a.MimeType,
		})
	}

	notes := make([]NoteDTO, 0, len(t.Notes()))
	for _, n := range t.Notes() {
		notes = append(notes, NoteDTO{
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
			CreatedBy: n.CreatedBy,
		})
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		UserID:      t.OwnerID(),
		Attachments: attachments,
		Notes:       notes,
		CreatedAt:   t.CreatedAt(),
	}
}

// ToTicketDTOs converts a slice of tickets.
func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ToTicketDTO(t))
	}
	return dtos
}
