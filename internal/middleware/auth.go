package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

const (
	ContextPrincipal = "principal"

	// SessionCookie carries the same token as the Authorization header, for
	// the HTML pages.
	SessionCookie = "bride_session"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (session.Principal, error)
}

// AuthMiddleware guards the JSON API.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization", "Authentication required.")
			c.Abort()
			return
		}

		p, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", httperr.Message("invalid_token"))
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// WebAuthMiddleware guards the HTML pages and sends anonymous visitors to
// the login form.
func WebAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFrom(c)
		if ok {
			if p, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(ContextPrincipal, p)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

func Principal(c *gin.Context) session.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(session.Principal); ok {
			return p
		}
	}
	return session.Principal{}
}

// Token returns the bearer token or, failing that, the session cookie.
func Token(c *gin.Context) (string, bool) {
	return tokenFrom(c)
}

func tokenFrom(c *gin.Context) (string, bool) {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], true
		}
		return "", false
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
