package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/config"
)

// DefaultSessionCookie is the cookie name used when none is configured.
const DefaultSessionCookie = "helpdesk_session"

// SetSessionCookie stores the opaque session ID as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, sessionID string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		cookieName(cookieConfig),
		sessionID,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	c.SetCookie(
		cookieName(cookieConfig),
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetSessionFromCookie returns the session ID carried by the request, or ""
// when the cookie is absent.
func GetSessionFromCookie(c *gin.Context, cookieConfig config.CookieConfig) string {
	sessionID, err := c.Cookie(cookieName(cookieConfig))
	if err != nil {
		return ""
	}
	return sessionID
}

func cookieName(cookieConfig config.CookieConfig) string {
	if cookieConfig.Name != "" {
		return cookieConfig.Name
	}
	return DefaultSessionCookie
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
