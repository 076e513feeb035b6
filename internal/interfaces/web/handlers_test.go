package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kbusecases "helpdesk/internal/application/kb/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/kb"
	domain "helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type fakeTicketRepository struct {
	tickets []*domain.Ticket
}

func (f *fakeTicketRepository) Save(ctx context.Context, t *domain.Ticket) error { return nil }

func (f *fakeTicketRepository) FindByID(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
	for _, t := range f.tickets {
		if t.ID() == ticketID {
			return t, nil
		}
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (f *fakeTicketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	return f.tickets, nil
}

func (f *fakeTicketRepository) UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error {
	return nil
}

func (f *fakeTicketRepository) AppendNote(ctx context.Context, ticketID uint, note domain.Note) error {
	return nil
}

type fakeArticleRepository struct {
	articles []*kb.Article
}

func (f *fakeArticleRepository) List(ctx context.Context) ([]*kb.Article, error) {
	return f.articles, nil
}

func (f *fakeArticleRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	return nil, errors.NewNotFoundError("article not found")
}

func testTicket(t *testing.T, id uint, status vo.TicketStatus) *domain.Ticket {
	t.Helper()
	ticket, err := domain.NewTicket("Printer offline", "It stopped responding.", "Technical Issue", vo.PriorityMedium, 7, nil)
	require.NoError(t, err)
	require.NoError(t, ticket.SetID(id))
	if status != vo.StatusNew {
		require.NoError(t, ticket.ChangeStatus(status))
	}
	return ticket
}

func loggedIn(userID uint, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("user_role", role)
		c.Next()
	}
}

func newViewTestRouter(t *testing.T, ticketRepo *fakeTicketRepository, identity gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	renderer, err := NewRenderer("../../../web/templates", log)
	require.NoError(t, err)

	articleRepo := &fakeArticleRepository{}
	handler := NewViewHandler(
		renderer,
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		kbusecases.NewListArticlesUseCase(articleRepo, log),
		markdown.NewMarkdownService(),
		log,
	)

	router := gin.New()
	if identity != nil {
		router.Use(identity)
	}
	router.GET("/", handler.Dashboard)
	router.GET("/auth", handler.AuthPage)
	return router
}

func TestDashboard_CountsTicketsByStatus(t *testing.T) {
	repo := &fakeTicketRepository{tickets: []*domain.Ticket{
		testTicket(t, 1, vo.StatusNew),
		testTicket(t, 2, vo.StatusNew),
		testTicket(t, 3, vo.StatusInProgress),
		testTicket(t, 4, vo.StatusResolved),
	}}
	router := newViewTestRouter(t, repo, loggedIn(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `<span class="count">2</span> New`)
	assert.Contains(t, body, `<span class="count">1</span> In Progress`)
	assert.Contains(t, body, `<span class="count">1</span> Resolved`)
}

func TestDashboard_EmptyCountsRenderAsZero(t *testing.T) {
	router := newViewTestRouter(t, &fakeTicketRepository{}, loggedIn(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="count">0</span> New`)
}

func TestDashboard_AnonymousRedirectsToAuth(t *testing.T) {
	router := newViewTestRouter(t, &fakeTicketRepository{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
}
