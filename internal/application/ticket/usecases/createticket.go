package usecases

import (
	"context"
	"encoding/base64"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AttachmentInput struct {
	Name     string
	Data     string // base64
	MimeType string
}

type CreateTicketCommand struct {
	Title       string
	Description string
	Category    string
	Priority    string
	OwnerID     uint
	Attachments []AttachmentInput
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	attachments := make([]ticket.Attachment, 0, len(cmd.Attachments))
	for _, in := range cmd.Attachments {
		a, err := ticket.NewAttachment(in.Name, in.Data, in.MimeType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		attachments = append(attachments, a)
	}

	category := vo.Category(cmd.Category)
	priority := vo.Priority(cmd.Priority)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		category,
		priority,
		cmd.OwnerID,
		attachments,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	category := vo.Category(cmd.Category)
	if !category.IsValid() {
		return errors.NewValidationError("invalid category")
	}

	priority := vo.Priority(cmd.Priority)
	if !priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if len(cmd.Attachments) > ticket.MaxAttachments {
		return errors.NewValidationError(fmt.Sprintf("at most %d attachments are allowed", ticket.MaxAttachments))
	}

	for _, a := range cmd.Attachments {
		decoded, err := base64.StdEncoding.DecodeString(a.Data)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("attachment %q is not valid base64", a.Name))
		}
		if len(decoded) > ticket.MaxAttachmentBytes {
			return errors.NewPayloadTooLargeError(fmt.Sprintf("attachment %q exceeds the 5MB limit", a.Name))
		}
	}

	return nil
}
