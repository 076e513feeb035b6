package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error {
	args := m.Called(ctx, ticketID, status)
	return args.Error(0)
}

func (m *mockTicketRepository) AppendNote(ctx context.Context, ticketID uint, note ticket.Note) error {
	args := m.Called(ctx, ticketID, note)
	return args.Error(0)
}

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newStoredTicket(id, ownerID uint, status vo.TicketStatus, notes []ticket.Note) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id,
		"Printer offline",
		"The third floor printer stopped responding.",
		"Technical Issue",
		vo.PriorityMedium,
		status,
		ownerID,
		nil,
		notes,
		time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return t
}
