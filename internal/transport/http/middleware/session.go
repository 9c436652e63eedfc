package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/pkg/logx"
	"recipebox/internal/transport/http/response"
)

const (
	ContextUserIDKey       = "user_id"
	ContextSessionTokenKey = "session_token"
)

// Session resolves the session cookie, if any, and stores the bound user id
// in the gin context. It never rejects a request by itself.
func Session(sessions *app.SessionManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(ContextUserIDKey, session.UserID)
			c.Set(ContextSessionTokenKey, token)
		case errors.Is(err, app.ErrUnauthenticated):
			// Stale or forged cookie: treat the request as anonymous.
		default:
			logx.FromContext(c.Request.Context()).Error("resolve session failed", "error", err)
			response.AbortError(c, http.StatusInternalServerError, response.InternalErrorMessage)
			return
		}
		c.Next()
	}
}

// RequireSession answers 401 when Session found no active session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			response.AbortFail(c, http.StatusUnauthorized, app.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := raw.(uint)
	return userID, ok && userID != 0
}

func SessionToken(c *gin.Context) string {
	return c.GetString(ContextSessionTokenKey)
}
