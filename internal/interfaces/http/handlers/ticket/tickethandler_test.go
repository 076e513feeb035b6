package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/ticket/usecases"
	domain "helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type fakeTicketRepository struct {
	saveFunc         func(ctx context.Context, t *domain.Ticket) error
	findByIDFunc     func(ctx context.Context, ticketID uint) (*domain.Ticket, error)
	listFunc         func(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
	updateStatusFunc func(ctx context.Context, ticketID uint, status vo.TicketStatus) error
	appendNoteFunc   func(ctx context.Context, ticketID uint, note domain.Note) error
}

func (f *fakeTicketRepository) Save(ctx context.Context, t *domain.Ticket) error {
	if f.saveFunc != nil {
		return f.saveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (f *fakeTicketRepository) FindByID(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (f *fakeTicketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, filter)
	}
	return []*domain.Ticket{}, nil
}

func (f *fakeTicketRepository) UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, ticketID, status)
	}
	return nil
}

func (f *fakeTicketRepository) AppendNote(ctx context.Context, ticketID uint, note domain.Note) error {
	if f.appendNoteFunc != nil {
		return f.appendNoteFunc(ctx, ticketID, note)
	}
	return nil
}

func testUploadConfig() *config.UploadConfig {
	return &config.UploadConfig{MaxFileBytes: 1024, MaxFiles: 5}
}

func identity(userID uint, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("user_role", role)
		c.Next()
	}
}

func newTestRouter(repo domain.TicketRepository, uploadCfg *config.UploadConfig, identity gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	handler := NewTicketHandler(
		usecases.NewCreateTicketUseCase(repo, log),
		usecases.NewGetTicketUseCase(repo, log),
		usecases.NewListTicketsUseCase(repo, log),
		usecases.NewChangeStatusUseCase(repo, log),
		usecases.NewAddNoteUseCase(repo, log),
		uploadCfg,
		log,
	)

	router := gin.New()
	group := router.Group("/api/tickets")
	group.Use(identity)
	group.POST("", handler.CreateTicket)
	group.GET("", handler.ListTickets)
	group.PATCH("/:id/status", handler.UpdateStatus)
	group.POST("/:id/notes", handler.AddNote)
	group.GET("/:id", handler.GetTicket)
	return router
}

func storedTicket(t *testing.T, id, ownerID uint) *domain.Ticket {
	t.Helper()
	ticket, err := domain.NewTicket("Printer offline", "It stopped responding.", "Technical Issue", vo.PriorityMedium, ownerID, nil)
	require.NoError(t, err)
	require.NoError(t, ticket.SetID(id))
	return ticket
}

func errorMessage(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope.Error.Message
}

func TestTicketHandler_CreateTicket_JSON(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	body := `{"title":"Cannot log in","description":"Login fails.","category":"Account Access","priority":"high"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Cannot log in", got["title"])
	assert.Equal(t, "new", got["status"])
	assert.Equal(t, float64(7), got["userId"])
}

func TestTicketHandler_CreateTicket_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader(`{"title":"only a title"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", errorMessage(t, w.Body))
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("attachments", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func ticketFormFields() map[string]string {
	return map[string]string{
		"title":       "Cannot log in",
		"description": "Login fails.",
		"category":    "Account Access",
		"priority":    "high",
	}
}

func TestTicketHandler_CreateTicket_Multipart(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	body, contentType := multipartBody(t, ticketFormFields(), map[string][]byte{
		"screenshot.png": []byte("fake png bytes"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Attachments []struct {
			Name     string `json:"name"`
			Data     string `json:"data"`
			MimeType string `json:"mimeType"`
		} `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "screenshot.png", got.Attachments[0].Name)
	assert.NotEmpty(t, got.Attachments[0].Data)
}

func TestTicketHandler_CreateTicket_MaxFilesAccepted(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	files := map[string][]byte{}
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		files[name] = []byte("x")
	}
	body, contentType := multipartBody(t, ticketFormFields(), files)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Exactly the limit is still within the limit.
	require.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Attachments []json.RawMessage `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Attachments, 5)
}

func TestTicketHandler_CreateTicket_TooManyFiles(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	files := map[string][]byte{}
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt"} {
		files[name] = []byte("x")
	}
	body, contentType := multipartBody(t, ticketFormFields(), files)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "at most 5 attachments are allowed", errorMessage(t, w.Body))
}

func TestTicketHandler_CreateTicket_FileAtSizeLimit(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	body, contentType := multipartBody(t, ticketFormFields(), map[string][]byte{
		"exact.bin": make([]byte, 1024),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTicketHandler_CreateTicket_FileTooLarge(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	body, contentType := multipartBody(t, ticketFormFields(), map[string][]byte{
		"huge.bin": make([]byte, 2048),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestTicketHandler_GetTicket_Owner(t *testing.T) {
	repo := &fakeTicketRepository{
		findByIDFunc: func(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
			return storedTicket(t, ticketID, 7), nil
		},
	}
	router := newTestRouter(repo, testUploadConfig(), identity(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_GetTicket_Forbidden(t *testing.T) {
	repo := &fakeTicketRepository{
		findByIDFunc: func(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
			return storedTicket(t, ticketID, 99), nil
		},
	}
	router := newTestRouter(repo, testUploadConfig(), identity(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(7, "alice", "user"))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/abc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ListTickets_ScopedByRole(t *testing.T) {
	var gotFilter domain.TicketFilter
	repo := &fakeTicketRepository{
		listFunc: func(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
			gotFilter = filter
			return []*domain.Ticket{storedTicket(t, 1, 7)}, nil
		},
	}

	router := newTestRouter(repo, testUploadConfig(), identity(7, "alice", "user"))
	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFilter.OwnerID)
	assert.Equal(t, uint(7), *gotFilter.OwnerID)

	adminRouter := newTestRouter(repo, testUploadConfig(), identity(2, "root", "admin"))
	req = httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	w = httptest.NewRecorder()
	adminRouter.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, gotFilter.OwnerID)
}

func TestTicketHandler_UpdateStatus(t *testing.T) {
	var gotStatus vo.TicketStatus
	repo := &fakeTicketRepository{
		findByIDFunc: func(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
			return storedTicket(t, ticketID, 7), nil
		},
		updateStatusFunc: func(ctx context.Context, ticketID uint, status vo.TicketStatus) error {
			gotStatus = status
			return nil
		},
	}
	router := newTestRouter(repo, testUploadConfig(), identity(2, "root", "admin"))

	req := httptest.NewRequest(http.MethodPatch, "/api/tickets/1/status", strings.NewReader(`{"status":"resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Mutation succeeds with an empty body.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, vo.StatusResolved, gotStatus)
}

func TestTicketHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(2, "root", "admin"))

	req := httptest.NewRequest(http.MethodPatch, "/api/tickets/1/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_AddNote(t *testing.T) {
	var appended domain.Note
	repo := &fakeTicketRepository{
		appendNoteFunc: func(ctx context.Context, ticketID uint, note domain.Note) error {
			appended = note
			return nil
		},
		findByIDFunc: func(ctx context.Context, ticketID uint) (*domain.Ticket, error) {
			return storedTicket(t, ticketID, 7), nil
		},
	}
	router := newTestRouter(repo, testUploadConfig(), identity(2, "root", "admin"))

	req := httptest.NewRequest(http.MethodPost, "/api/tickets/1/notes", strings.NewReader(`{"text":"Escalated."}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "Escalated.", appended.Text)
	assert.Equal(t, "root", appended.CreatedBy)
}

func TestTicketHandler_AddNote_MissingText(t *testing.T) {
	router := newTestRouter(&fakeTicketRepository{}, testUploadConfig(), identity(2, "root", "admin"))

	req := httptest.NewRequest(http.MethodPost, "/api/tickets/1/notes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
