package jwtmw

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextSessionID is the gin context key holding the current session ID.
	ContextSessionID = "sessionID"
	// DefaultCookieName is the name of the session cookie.
	DefaultCookieName = "analyzer_session"
)

// CookieOptions controls how the session cookie is written.
type CookieOptions struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// SessionRequired returns a Gin middleware that resolves the session ID from the
// signed session cookie. When the cookie is missing or fails verification, a new
// session is started and a fresh cookie is issued.
func SessionRequired(gen Generator, opts CookieOptions) gin.HandlerFunc {
	if opts.Name == "" {
		opts.Name = DefaultCookieName
	}

	return func(c *gin.Context) {
		// 1. Reuse the existing session when its token is valid
		if tokenStr, err := c.Cookie(opts.Name); err == nil && tokenStr != "" {
			if sessionID, err := gen.ParseToken(tokenStr); err == nil {
				c.Set(ContextSessionID, sessionID)
				c.Next()
				return
			}
			slog.Debug("session cookie rejected, starting a new session")
		}

		// 2. Start a new session
		sessionID := uuid.NewString()
		token, err := gen.GenerateToken(sessionID)
		if err != nil {
			slog.Error("failed to issue session token", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.Name, token, opts.MaxAge, "/", "", opts.Secure, true)
		c.Set(ContextSessionID, sessionID)

		// 3. Pass control to the next handler
		c.Next()
	}
}

// SessionID returns the session ID stored by SessionRequired, or "" when absent.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
