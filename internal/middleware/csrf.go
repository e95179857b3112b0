package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CSRF valida Origin/Referer em métodos que alteram estado.
// Sem lista configurada, aceita apenas a mesma origem (host da requisição).
func CSRF(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if o := normalizeOrigin(origin); o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = extractOrigin(c.GetHeader("Referer"))
		}

		if origin == "" || !isAllowedOrigin(c.Request, origin, allowed) {
			c.String(http.StatusForbidden, "CSRF validation failed")
			c.Abort()
			return
		}
		c.Next()
	}
}

func isAllowedOrigin(r *http.Request, origin string, allowed map[string]bool) bool {
	normalized := normalizeOrigin(origin)
	if allowed[normalized] {
		return true
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

func extractOrigin(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
