package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockArticleRepository struct {
	mock.Mock
}

func (m *mockArticleRepository) List(ctx context.Context) ([]*kb.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kb.Article), args.Error(1)
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kb.Article), args.Error(1)
}

var _ kb.Repository = (*mockArticleRepository)(nil)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sampleArticles() []*kb.Article {
	return []*kb.Article{
		{
			ID:       1,
			Title:    "How to reset your password",
			Category: "Account Access",
			Content:  "Use the reset link on the login page.",
			Keywords: []string{"password", "login", "reset"},
		},
		{
			ID:       2,
			Title:    "Understanding ticket priorities",
			Category: "Other",
			Content:  "Priorities range from low to urgent.",
			Keywords: []string{"priority", "urgent"},
		},
		{
			ID:       3,
			Title:    "Billing cycle explained",
			Category: "Billing",
			Content:  "Invoices are issued on the first of each month.",
			Keywords: []string{"invoice", "payment"},
		},
	}
}

func TestListArticlesUseCase_Execute_NoSearchReturnsAll(t *testing.T) {
	repo := new(mockArticleRepository)
	repo.On("List", mock.Anything).Return(sampleArticles(), nil)

	uc := NewListArticlesUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListArticlesQuery{})

	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestListArticlesUseCase_Execute_SearchFilters(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []uint
	}{
		{name: "match on title", search: "Password", wantIDs: []uint{1}},
		{name: "match on category", search: "billing", wantIDs: []uint{3}},
		{name: "match on content", search: "login page", wantIDs: []uint{1}},
		{name: "match on keyword", search: "urgent", wantIDs: []uint{2}},
		{name: "no match", search: "kubernetes", wantIDs: []uint{}},
		{name: "whitespace only matches all", search: "   ", wantIDs: []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockArticleRepository)
			repo.On("List", mock.Anything).Return(sampleArticles(), nil)

			uc := NewListArticlesUseCase(repo, newTestLogger())

			result, err := uc.Execute(context.Background(), ListArticlesQuery{Search: tt.search})

			require.NoError(t, err)

			gotIDs := make([]uint, 0, len(result))
			for _, a := range result {
				gotIDs = append(gotIDs, a.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestListArticlesUseCase_Execute_RepositoryFailure(t *testing.T) {
	repo := new(mockArticleRepository)
	repo.On("List", mock.Anything).Return(nil, errors.NewInternalError("database unavailable"))

	uc := NewListArticlesUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListArticlesQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
}
