package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	ucUser "github.com/BruksfildServices01/client-tracker/internal/usecase/user"
)

const (
	msgAdminCreated = "管理員帳號已建立： " + domain.BootstrapUsername + " / " + domain.BootstrapPassword
	msgAdminExists  = "管理員已存在！"
)

type BootstrapHandler struct {
	bootstrap *ucUser.BootstrapAdmin
}

func NewBootstrapHandler(uc *ucUser.BootstrapAdmin) *BootstrapHandler {
	return &BootstrapHandler{bootstrap: uc}
}

func (h *BootstrapHandler) CreateAdmin(c *gin.Context) {
	created, err := h.bootstrap.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "create_admin", err)
		return
	}
	if !created {
		c.String(http.StatusOK, msgAdminExists)
		return
	}
	c.String(http.StatusOK, msgAdminCreated)
}
