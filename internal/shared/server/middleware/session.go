package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey = "sessionId"
	// SessionCookie carries the browser's session id.
	SessionCookie = "prism_session"
	// SessionHeader lets non-browser clients pin a session explicitly.
	SessionHeader = "X-Session-Id"
)

// Session resolves the caller's session id from the header or cookie,
// minting a new one when neither is present.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = strings.TrimSpace(cookie)
			}
		}
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, 0, "/", "", secure, true)
		c.Writer.Header().Set(SessionHeader, id)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID stored by Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
