package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"helpdesk/internal/domain/kb"
	"helpdesk/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between Article domain entities and persistence models.
type ArticleMapper interface {
	ToModel(a *kb.Article) (*models.ArticleModel, error)
	ToDomain(model *models.ArticleModel) (*kb.Article, error)
}

// ArticleMapperImpl is the concrete implementation of ArticleMapper.
type ArticleMapperImpl struct{}

// NewArticleMapper creates a new ArticleMapper.
func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(a *kb.Article) (*models.ArticleModel, error) {
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article keywords: %w", err)
	}

	return &models.ArticleModel{
		ID:        a.ID,
		Title:     a.Title,
		Category:  a.Category,
		Content:   a.Content,
		Keywords:  datatypes.JSON(keywordsJSON),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*kb.Article, error) {
	var keywords []string
	if len(model.Keywords) > 0 {
		if err := json.Unmarshal(model.Keywords, &keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article keywords (id=%d): %w", model.ID, err)
		}
	}

	return &kb.Article{
		ID:        model.ID,
		Title:     model.Title,
		Category:  model.Category,
		Content:   model.Content,
		Keywords:  keywords,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
