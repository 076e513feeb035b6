package usecases

import (
	"context"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetArticleQuery struct {
	ArticleID uint
}

type GetArticleUseCase struct {
	articleRepo kb.Repository
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo kb.Repository,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*kb.Article, error) {
	if query.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		uc.logger.Warnw("failed to load article", "article_id", query.ArticleID, "error", err)
		return nil, err
	}

	return article, nil
}
