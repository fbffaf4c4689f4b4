package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/session"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
	"github.com/jobtrail/jobtrail/pkg/response"
)

// SessionCookie is the cookie carrying the opaque session ID.
const SessionCookie = "jobtrail_session"

const userIDKey = "userID"

// RequireSession resolves the session cookie to a user ID and aborts
// with 401 when there is none. Handlers read the result via UserID.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			response.Error(c, apperrors.Unauthorized)
			c.Abort()
			return
		}

		userID, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			response.Error(c, apperrors.Unauthorized)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user set by RequireSession.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uint)
	return userID
}
