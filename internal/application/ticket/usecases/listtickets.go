package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID  uint
	IsAdmin bool
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket for admins and only the caller's own tickets
// otherwise.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	uc.logger.Infow("executing list tickets use case", "user_id", query.UserID, "is_admin", query.IsAdmin)

	filter := ticket.TicketFilter{}
	if !query.IsAdmin {
		ownerID := query.UserID
		filter.OwnerID = &ownerID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
