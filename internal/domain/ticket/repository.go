package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows List results. A nil OwnerID returns every ticket;
// callers must authorize before listing without a filter.
type TicketFilter struct {
	OwnerID  *uint
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Category *vo.Category
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// UpdateStatus persists a status change for the given ticket.
	UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error
	// AppendNote atomically appends a note to the ticket's note sequence.
	// Implementations must guarantee that two concurrent appends to the same
	// ticket both survive.
	AppendNote(ctx context.Context, ticketID uint, note Note) error
}
