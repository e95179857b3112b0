package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

const LoginPath = "/login"

// Authenticator valida o token do cookie
type Authenticator interface {
	Execute(ctx context.Context, token string) (session.Session, error)
}

// RequireSession redireciona para /login quando não há sessão válida
func RequireSession(authn Authenticator, cookies *session.CookieHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := authn.Execute(c.Request.Context(), cookies.Get(c))
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		session.Set(c, s)
		c.Next()
	}
}

// RequireAdmin deve vir depois de RequireSession
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.From(c)
		if !ok || !s.IsAdmin() {
			httperr.Forbidden(c, httperr.MsgAdminOnly)
			c.Abort()
			return
		}
		c.Next()
	}
}
