package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/services"
)

// CtxAdmin holds the *services.SessionAdmin of the signed-in admin.
const CtxAdmin = "admin"

// SessionResolver maps a session cookie value to its admin.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*services.SessionAdmin, error)
}

// RequireAdmin rejects requests without a valid admin session cookie.
func RequireAdmin(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := resolve(c, sessions, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(CtxAdmin, admin)
		c.Next()
	}
}

// OptionalAdmin attaches the admin when the cookie is valid and never rejects.
func OptionalAdmin(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, ok := resolve(c, sessions, cookieName); ok {
			c.Set(CtxAdmin, admin)
		}
		c.Next()
	}
}

func resolve(c *gin.Context, sessions SessionResolver, cookieName string) (*services.SessionAdmin, bool) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil, false
	}
	admin, err := sessions.ResolveSession(c.Request.Context(), token)
	if err != nil || admin == nil {
		return nil, false
	}
	return admin, true
}

// CurrentAdmin returns the admin set by RequireAdmin or OptionalAdmin.
func CurrentAdmin(c *gin.Context) (*services.SessionAdmin, bool) {
	v, ok := c.Get(CtxAdmin)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*services.SessionAdmin)
	return admin, ok && admin != nil
}
