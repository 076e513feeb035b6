package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddNoteCommand struct {
	TicketID uint
	Text     string
	Author   string
}

type AddNoteUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAddNoteUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing add note use case", "ticket_id", cmd.TicketID, "author", cmd.Author)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	note, err := ticket.NewNote(cmd.Text, cmd.Author)
	if err != nil {
		uc.logger.Warnw("invalid note", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.AppendNote(ctx, cmd.TicketID, note); err != nil {
		uc.logger.Errorw("failed to append note", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to reload ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("note added successfully", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(t), nil
}
