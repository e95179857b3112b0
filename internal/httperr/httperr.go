package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

// Mensagens exibidas ao operador (texto puro, sem página de erro estruturada)
const (
	MsgForbiddenClient = "⛔ 你沒有權限操作這筆資料"
	MsgAdminOnly       = "⛔ 只有管理員可以管理員工"
	MsgSelfDelete      = "⛔ 無法刪除自己"
	MsgNotFound        = "找不到這筆資料"
	MsgInternal        = "系統錯誤，請稍後再試"
)

func Write(c *gin.Context, status int, message string) {
	c.String(status, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

// Internal registra o erro e responde com mensagem genérica
func Internal(c *gin.Context, action string, err error) {
	log := logger.Get()
	log.Error().
		Err(err).
		Str("action", action).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	Write(c, http.StatusInternalServerError, MsgInternal)
}
