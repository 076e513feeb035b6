package kb

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/kb/usecases"
	"helpdesk/internal/domain/kb"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/utils"
)

// ArticleResponse is the API representation of a knowledge base article.
// Content carries the stored markdown; the detail endpoint additionally
// renders it into sanitized HTML.
type ArticleResponse struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	HTML     string   `json:"html,omitempty"`
	Keywords []string `json:"keywords"`
}

type KBHandler struct {
	listArticlesUC *usecases.ListArticlesUseCase
	getArticleUC   *usecases.GetArticleUseCase
	markdownSvc    markdown.MarkdownService
	logger         logger.Interface
}

func NewKBHandler(
	listArticlesUC *usecases.ListArticlesUseCase,
	getArticleUC *usecases.GetArticleUseCase,
	markdownSvc markdown.MarkdownService,
	log logger.Interface,
) *KBHandler {
	return &KBHandler{
		listArticlesUC: listArticlesUC,
		getArticleUC:   getArticleUC,
		markdownSvc:    markdownSvc,
		logger:         log,
	}
}

// ListArticles handles GET /api/knowledge-base. An optional ?q= filters the
// list.
func (h *KBHandler) ListArticles(c *gin.Context) {
	query := usecases.ListArticlesQuery{Search: c.Query("q")}

	articles, err := h.listArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		result = append(result, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, result)
}

// GetArticle handles GET /api/knowledge-base/:id.
func (h *KBHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid article ID"))
		return
	}

	article, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{ArticleID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := toArticleResponse(article)
	body, err := h.markdownSvc.ToHTMLSanitized(article.Content)
	if err != nil {
		h.logger.Errorw("failed to render article", "article_id", article.ID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to render article"))
		return
	}
	response.HTML = body

	c.JSON(http.StatusOK, response)
}

func toArticleResponse(a *kb.Article) ArticleResponse {
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Category: a.Category,
		Content:  a.Content,
		Keywords: keywords,
	}
}
