package middleware

import (
	"context"
	"strings"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionIDKey = "sessionID"
	sessionKey   = "session"
)

// HandleResolver maps a signed session handle to a session id.
type HandleResolver interface {
	SessionID(handle string) (string, error)
}

// SessionMiddleware resolves the caller's stored session from the session cookie or
// a bearer handle. It never rejects: callers without a usable session continue as
// guests.
func SessionMiddleware(store sessionRepo.Store, handles HandleResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := sessionHandle(c, cookieName)
		if handle == "" {
			c.Next()
			return
		}

		sid, err := handles.SessionID(handle)
		if err != nil {
			zap.L().Debug("Ignoring invalid session handle", zap.Error(err))
			c.Next()
			return
		}
		c.Set(sessionIDKey, sid)

		session, err := store.Load(c.Request.Context(), sid)
		if err != nil {
			zap.L().Error("Failed to load session", zap.String("sessionID", sid), zap.Error(err))
		}
		if session != nil {
			c.Set(sessionKey, session)
		}
		c.Next()
	}
}

func sessionHandle(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// CurrentSession returns the caller's session, or nil for a guest.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}

// CurrentSessionID returns the id named by a valid handle, even when the stored
// session is gone.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// SetSession records a session established during this request.
func SetSession(c *gin.Context, sessionID string, s *models.Session) {
	c.Set(sessionIDKey, sessionID)
	c.Set(sessionKey, s)
}

// ClearSession removes the stored session named by the request, if any.
func ClearSession(ctx context.Context, c *gin.Context, store sessionRepo.Store) error {
	sid := CurrentSessionID(c)
	c.Set(sessionKey, (*models.Session)(nil))
	if sid == "" {
		return nil
	}
	return store.Clear(ctx, sid)
}
