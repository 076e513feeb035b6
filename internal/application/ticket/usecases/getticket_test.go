package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute_OwnerCanView(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(newStoredTicket(1, 7, vo.StatusNew, nil), nil)

	uc := NewGetTicketUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1, UserID: 7})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, uint(7), result.UserID)
}

func TestGetTicketUseCase_Execute_AdminCanViewAnyTicket(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(newStoredTicket(1, 7, vo.StatusInProgress, nil), nil)

	uc := NewGetTicketUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1, UserID: 99, IsAdmin: true})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
}

func TestGetTicketUseCase_Execute_OtherUserForbidden(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(newStoredTicket(1, 7, vo.StatusNew, nil), nil)

	uc := NewGetTicketUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1, UserID: 8})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	repo := new(mockTicketRepository)
	repo.On("FindByID", mock.Anything, uint(42)).
		Return(nil, errors.NewNotFoundError("ticket not found"))

	uc := NewGetTicketUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 42, UserID: 7})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
