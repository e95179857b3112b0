package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

// render adiciona a sessão atual (se houver) aos dados da página
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if s, ok := session.From(c); ok {
		data["Session"] = &s
	} else {
		data["Session"] = nil
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = "客戶管理"
	}
	if _, ok := data["Error"]; !ok {
		data["Error"] = ""
	}
	c.HTML(status, page, data)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, httperr.MsgNotFound)
		return 0, false
	}
	return uint(id), true
}

// writeBusiness trata Forbidden/NotFound; devolve false se o erro não for um desses
func writeBusiness(c *gin.Context, err error, forbiddenMsg string) bool {
	switch httperr.Code(err) {
	case httperr.CodeForbidden:
		httperr.Forbidden(c, forbiddenMsg)
	case httperr.CodeSelfDelete:
		httperr.Forbidden(c, httperr.MsgSelfDelete)
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.MsgNotFound)
	default:
		return false
	}
	return true
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, path)
}
