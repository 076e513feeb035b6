package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachmentsJSON, err := json.Marshal(t.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket attachments: %w", err)
	}
	notesJSON, err := json.Marshal(t.Notes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket notes: %w", err)
	}

	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		OwnerID:     t.OwnerID(),
		Attachments: datatypes.JSON(attachmentsJSON),
		Notes:       datatypes.JSON(notesJSON),
		CreatedAt:   t.CreatedAt().UnixMilli(),
	}, nil
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, _ := vo.NewCategory(model.Category)
	priority, _ := vo.NewPriority(model.Priority)
	status, _ := vo.NewTicketStatus(model.Status)

	var attachments []ticket.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket attachments (id=%d): %w", model.ID, err)
		}
	}

	var notes []ticket.Note
	if len(model.Notes) > 0 {
		if err := json.Unmarshal(model.Notes, &notes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket notes (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		category,
		priority,
		status,
		model.OwnerID,
		attachments,
		notes,
		ticketConvertMillisToTime(model.CreatedAt),
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
