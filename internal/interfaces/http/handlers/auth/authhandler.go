package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	registerUC    *usecases.RegisterUseCase
	loginUC       *usecases.LoginUseCase
	logoutUC      *usecases.LogoutUseCase
	currentUserUC *usecases.CurrentUserUseCase
	authCfg       *config.AuthConfig
	logger        logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	currentUserUC *usecases.CurrentUserUseCase,
	authCfg *config.AuthConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:    registerUC,
		loginUC:       loginUC,
		logoutUC:      logoutUC,
		currentUserUC: currentUserUC,
		authCfg:       authCfg,
		logger:        log,
	}
}

// Register handles POST /api/register. A successful registration also logs
// the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RegisterCommand{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.authCfg.Cookie, result.Session.ID, h.sessionMaxAge())
	c.JSON(http.StatusCreated, result.User)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	cmd := usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.authCfg.Cookie, result.Session.ID, h.sessionMaxAge())
	c.JSON(http.StatusOK, result.User)
}

// Logout handles POST /api/logout. Safe to call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := utils.GetSessionFromCookie(c, h.authCfg.Cookie)

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.authCfg.Cookie)
	utils.EmptySuccessResponse(c)
}

// CurrentUser handles GET /api/user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	query := usecases.CurrentUserQuery{UserID: c.GetUint("user_id")}

	result, err := h.currentUserUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) sessionMaxAge() int {
	return h.authCfg.Session.ExpDays * 24 * 60 * 60
}
