package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/metrics"
	"github.com/BruksfildServices01/client-tracker/internal/middleware"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	ucAuth "github.com/BruksfildServices01/client-tracker/internal/usecase/auth"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

const msgInvalidCredentials = "帳號或密碼錯誤"

type AuthHandler struct {
	login   *ucAuth.Login
	logout  *ucAuth.Logout
	authn   middleware.Authenticator
	cookies *session.CookieHelper
}

func NewAuthHandler(
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	authn middleware.Authenticator,
	cookies *session.CookieHelper,
) *AuthHandler {
	return &AuthHandler{
		login:   login,
		logout:  logout,
		authn:   authn,
		cookies: cookies,
	}
}

// --------- Requests ---------

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login", gin.H{"Title": "登入", "Username": ""})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	out, err := h.login.Execute(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			render(c, http.StatusUnauthorized, "login", gin.H{
				"Title":    "登入",
				"Error":    msgInvalidCredentials,
				"Username": form.Username,
			})
			return
		}
		httperr.Internal(c, "login", err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.cookies.Set(c, out.Token, out.TTL)

	log := logger.Get()
	log.Info().
		Uint("user_id", out.Session.UserID).
		Str("role", out.Session.Role.String()).
		Msg("login")

	redirect(c, "/list")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), h.cookies.Get(c)); err != nil {
		// o cookie é limpo mesmo assim
		log := logger.Get()
		log.Warn().Err(err).Msg("session revocation failed")
	}
	h.cookies.Clear(c)
	redirect(c, "/login")
}

func (h *AuthHandler) Home(c *gin.Context) {
	if _, err := h.authn.Execute(c.Request.Context(), h.cookies.Get(c)); err == nil {
		redirect(c, "/list")
		return
	}
	redirect(c, "/login")
}
