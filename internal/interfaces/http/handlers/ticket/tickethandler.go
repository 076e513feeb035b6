package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	addNoteUC      *usecases.AddNoteUseCase
	uploadCfg      *config.UploadConfig
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	addNoteUC *usecases.AddNoteUseCase,
	uploadCfg *config.UploadConfig,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		changeStatusUC: changeStatusUC,
		addNoteUC:      addNoteUC,
		uploadCfg:      uploadCfg,
		logger:         log,
	}
}

// CreateTicket handles POST /api/tickets. The submission form posts
// multipart/form-data; JSON bodies with pre-encoded attachments are accepted
// too.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req *CreateTicketRequest

	if isMultipart(c) {
		parsed, err := parseMultipartCreate(c, h.uploadCfg)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req = parsed
	} else {
		var body CreateTicketRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			h.logger.Warnw("invalid request body for create ticket", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
		req = &body
	}

	userID := c.GetUint("user_id")
	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListTickets handles GET /api/tickets. Admins see every ticket, users only
// their own.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		UserID:  c.GetUint("user_id"),
		IsAdmin: authorization.UserRole(c.GetString("user_role")).IsAdmin(),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTicket handles GET /api/tickets/:id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   c.GetUint("user_id"),
		IsAdmin:  authorization.UserRole(c.GetString("user_role")).IsAdmin(),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus handles PATCH /api/tickets/:id/status. Admin only.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ChangedBy: c.GetUint("user_id"),
	}

	if _, err := h.changeStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.EmptySuccessResponse(c)
}

// AddNote handles POST /api/tickets/:id/notes. Admin only.
func (h *TicketHandler) AddNote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "note text is required")
		return
	}

	cmd := usecases.AddNoteCommand{
		TicketID: ticketID,
		Text:     req.Text,
		Author:   c.GetString("username"),
	}

	if _, err := h.addNoteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.EmptySuccessResponse(c)
}
