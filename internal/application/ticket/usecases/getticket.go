package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "user_id", query.UserID)

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !t.CanBeViewedBy(query.UserID, query.IsAdmin) {
		uc.logger.Warnw("user cannot view ticket", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.ToTicketDTO(t), nil
}
