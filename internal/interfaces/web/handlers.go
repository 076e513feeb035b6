package web

import (
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	kbusecases "helpdesk/internal/application/kb/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/kb"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// ViewHandler serves the server-rendered pages. All data access goes through
// the same use cases as the JSON API.
type ViewHandler struct {
	renderer       *Renderer
	listTicketsUC  *ticketusecases.ListTicketsUseCase
	getTicketUC    *ticketusecases.GetTicketUseCase
	listArticlesUC *kbusecases.ListArticlesUseCase
	markdownSvc    markdown.MarkdownService
	logger         logger.Interface
}

func NewViewHandler(
	renderer *Renderer,
	listTicketsUC *ticketusecases.ListTicketsUseCase,
	getTicketUC *ticketusecases.GetTicketUseCase,
	listArticlesUC *kbusecases.ListArticlesUseCase,
	markdownSvc markdown.MarkdownService,
	log logger.Interface,
) *ViewHandler {
	return &ViewHandler{
		renderer:       renderer,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		listArticlesUC: listArticlesUC,
		markdownSvc:    markdownSvc,
		logger:         log,
	}
}

type viewer struct {
	ID       uint
	Username string
	IsAdmin  bool
	LoggedIn bool
}

func currentViewer(c *gin.Context) viewer {
	id := c.GetUint("user_id")
	return viewer{
		ID:       id,
		Username: c.GetString("username"),
		IsAdmin:  authorization.UserRole(c.GetString("user_role")).IsAdmin(),
		LoggedIn: id != 0,
	}
}

// Dashboard handles GET /.
func (h *ViewHandler) Dashboard(c *gin.Context) {
	v := currentViewer(c)
	if !v.LoggedIn {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	tickets, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		UserID:  v.ID,
		IsAdmin: v.IsAdmin,
	})
	if err != nil {
		h.logger.Errorw("failed to load dashboard tickets", "user_id", v.ID, "error", err)
		h.renderer.HTML(c, http.StatusInternalServerError, "pages/error.pongo2", pongo2.Context{
			"viewer":  v,
			"message": "Failed to load tickets.",
		})
		return
	}

	counts := map[string]int{
		vo.StatusNew.String():        0,
		vo.StatusInProgress.String(): 0,
		vo.StatusResolved.String():   0,
	}
	for _, t := range tickets {
		counts[t.Status]++
	}

	h.renderer.HTML(c, http.StatusOK, "pages/dashboard.pongo2", pongo2.Context{
		"viewer":  v,
		"tickets": tickets,
		"counts":  counts,
	})
}

// SubmitTicket handles GET /submit-ticket.
func (h *ViewHandler) SubmitTicket(c *gin.Context) {
	v := currentViewer(c)
	if !v.LoggedIn {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "pages/submit_ticket.pongo2", pongo2.Context{
		"viewer":     v,
		"categories": vo.SuggestedCategories,
		"priorities": vo.AllPriorities,
	})
}

// TicketDetail handles GET /tickets/:id.
func (h *ViewHandler) TicketDetail(c *gin.Context) {
	v := currentViewer(c)
	if !v.LoggedIn {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	ticketID, err := parseUintParam(c, "id")
	if err != nil {
		h.renderNotFound(c, v)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   v.ID,
		IsAdmin:  v.IsAdmin,
	})
	if err != nil {
		h.renderNotFound(c, v)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "pages/ticket_detail.pongo2", pongo2.Context{
		"viewer": v,
		"ticket": t,
	})
}

// KnowledgeBase handles GET /knowledge-base with optional ?q= filter.
func (h *ViewHandler) KnowledgeBase(c *gin.Context) {
	v := currentViewer(c)
	search := c.Query("q")

	articles, err := h.listArticlesUC.Execute(c.Request.Context(), kbusecases.ListArticlesQuery{
		Search: search,
	})
	if err != nil {
		h.logger.Errorw("failed to load articles", "error", err)
		articles = []*kb.Article{}
	}

	type renderedArticle struct {
		ID       uint
		Title    string
		Category string
		HTML     string
		Keywords []string
	}

	rendered := make([]renderedArticle, 0, len(articles))
	for _, a := range articles {
		body, err := h.markdownSvc.ToHTMLSanitized(a.Content)
		if err != nil {
			h.logger.Warnw("failed to render article", "article_id", a.ID, "error", err)
			continue
		}
		rendered = append(rendered, renderedArticle{
			ID:       a.ID,
			Title:    a.Title,
			Category: a.Category,
			HTML:     body,
			Keywords: a.Keywords,
		})
	}

	h.renderer.HTML(c, http.StatusOK, "pages/knowledge_base.pongo2", pongo2.Context{
		"viewer":   v,
		"articles": rendered,
		"search":   search,
	})
}

// AuthPage handles GET /auth.
func (h *ViewHandler) AuthPage(c *gin.Context) {
	v := currentViewer(c)
	if v.LoggedIn {
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "pages/auth.pongo2", pongo2.Context{
		"viewer": v,
	})
}

func (h *ViewHandler) renderNotFound(c *gin.Context, v viewer) {
	h.renderer.HTML(c, http.StatusNotFound, "pages/error.pongo2", pongo2.Context{
		"viewer":  v,
		"message": "Ticket not found.",
	})
}
