package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	sessionRepo user.SessionRepository
	userRepo    user.Repository
	cookieCfg   *config.CookieConfig
	logger      logger.Interface
}

func NewAuthMiddleware(
	sessionRepo user.SessionRepository,
	userRepo user.Repository,
	cookieCfg *config.CookieConfig,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cookieCfg:   cookieCfg,
		logger:      logger,
	}
}

// RequireAuth resolves the session cookie to a user and aborts with 401 when
// there is no valid session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, session, ok := m.resolve(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		m.setIdentity(c, u, session)
		c.Next()
	}
}

// OptionalAuth resolves the session if present and continues either way.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, session, ok := m.resolve(c); ok {
			m.setIdentity(c, u, session)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*user.User, *user.Session, bool) {
	sessionID := utils.GetSessionFromCookie(c, *m.cookieCfg)
	if sessionID == "" {
		return nil, nil, false
	}

	session, err := m.sessionRepo.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		return nil, nil, false
	}

	if session.IsExpired() {
		// Best effort cleanup; the expired row is unusable either way.
		_ = m.sessionRepo.Delete(c.Request.Context(), session.ID)
		return nil, nil, false
	}

	u, err := m.userRepo.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		m.logger.Warnw("session references missing user", "user_id", session.UserID)
		return nil, nil, false
	}

	session.UpdateActivity()
	if err := m.sessionRepo.Update(c.Request.Context(), session); err != nil {
		m.logger.Warnw("failed to refresh session activity", "error", err)
	}

	return u, session, true
}

func (m *AuthMiddleware) setIdentity(c *gin.Context, u *user.User, session *user.Session) {
	c.Set("user_id", u.ID())
	c.Set("username", u.Username())
	c.Set("user_role", u.Role().String())
	c.Set("session_id", session.ID)
}
