package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/logger"
)

type ListArticlesQuery struct {
	// Search is an optional free-text filter over title, category, content
	// and keywords.
	Search string
}

type ListArticlesUseCase struct {
	articleRepo kb.Repository
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo kb.Repository,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) ([]*kb.Article, error) {
	articles, err := uc.articleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	search := strings.TrimSpace(query.Search)
	if search == "" {
		return articles, nil
	}

	filtered := make([]*kb.Article, 0, len(articles))
	for _, a := range articles {
		if a.Matches(search) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
