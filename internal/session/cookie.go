package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "crm_session"

// CookieHelper grava e limpa o cookie de sessão (httpOnly, SameSite=Lax)
type CookieHelper struct {
	secure bool
}

func NewCookieHelper(secure bool) *CookieHelper {
	return &CookieHelper{secure: secure}
}

func (h *CookieHelper) Set(c *gin.Context, token string, ttl time.Duration) {
	h.setCookie(c, token, int(ttl.Seconds()))
}

func (h *CookieHelper) Clear(c *gin.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) Get(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", h.secure, true)
}
