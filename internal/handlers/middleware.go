package handlers

import (
	"net/http"

	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// sessionCookieName is the opaque token the browser echoes back; the
// authoritative session state lives server-side, keyed by it.
const sessionCookieName = "session_token"

// Gin context keys populated by the session middleware.
const (
	ctxUserIDKey   = "userId"
	ctxUsernameKey = "username"
)

const msgLoginRequired = "please log in first"

// sessionMiddleware gates the JSON API: no valid, unexpired session means
// 401 and no side effects.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "message": msgLoginRequired,
		})
		return
	}

	ident, ok := h.services.Sessions.Get(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false, "message": msgLoginRequired,
		})
		return
	}

	// Slide the cookie lifetime along with the server-side idle deadline.
	h.setSessionCookie(c, token)

	c.Set(ctxUserIDKey, ident.UserID)
	c.Set(ctxUsernameKey, ident.Username)
	c.Next()
}

// sessionFromCookie resolves the current session for handlers that redirect
// instead of returning 401 (pages, websocket upgrade).
func (h *Handler) sessionFromCookie(c *gin.Context) (service.SessionIdentity, bool) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		return service.SessionIdentity{}, false
	}
	return h.services.Sessions.Get(token)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.services.Sessions.TTL().Seconds())
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// currentUserID reads the user id stored by sessionMiddleware.
func currentUserID(c *gin.Context) int {
	v, _ := c.Get(ctxUserIDKey)
	id, _ := v.(int)
	return id
}
