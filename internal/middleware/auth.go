package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/vpeters/high5-api/internal/constants"
	apierrors "github.com/vpeters/high5-api/internal/errors"
)

// RequireAuth gates a route on a live high5 session. Login writes the user's
// ID into the session; requests arriving without one are rejected before any
// handler runs. The ID is normalized to uint64 here so handlers downstream
// never deal with session typing.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, ok := asUserID(session.Get(constants.ContextKeyUserID))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, id)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID stored by RequireAuth.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return asUserID(value)
}

// asUserID coerces a session or context value to a user ID. Session stores
// round-trip the uint64 written at login, but decoded values can come back
// as other integer widths depending on the store.
func asUserID(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
