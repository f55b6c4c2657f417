package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserKey = "currentUser"

	sessionCookie = "blog_session"
	flashCookie   = "blog_flash"

	sessionCookieMaxAge = 7 * 24 * 60 * 60 // matches the session token TTL
	flashCookieMaxAge   = 60
)

// requestLog attaches a request id and logs one structured line per request.
func (h *Handler) requestLog(c *gin.Context) {
	start := time.Now()
	reqID := uuid.NewString()
	c.Next()
	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// identity resolves the session cookie into a user for this request.
// The user is refetched by id every time; a stale or unverifiable token
// degrades to an anonymous request rather than an error.
func (h *Handler) identity(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.Next()
		return
	}
	userID, err := h.services.ParseSession(token)
	if err != nil {
		c.Next()
		return
	}
	u, err := h.services.UserByID(userID)
	if err != nil || u == nil {
		c.Next()
		return
	}
	c.Set(ctxUserKey, u)
	c.Next()
}

// requireAdmin short-circuits with 403 unless the resolved identity is the
// reserved admin user. A hard authorization failure: no redirect, no flash.
func (h *Handler) requireAdmin(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok || !h.services.IsAdmin(u.ID) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	c.Next()
}

// startSession sets the session cookie for a freshly authenticated user.
func (h *Handler) startSession(c *gin.Context, userID int) error {
	token, err := h.services.IssueSession(userID)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	return nil
}

// endSession clears the session cookie.
func endSession(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// setFlash stores a one-shot notice shown on the next rendered page.
// Gin query-escapes cookie values, so spaces survive the round trip.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, flashCookieMaxAge, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
