package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-tracker/internal/httpresp"
	"github.com/BruksfildServices01/client-tracker/pkg/logger"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("health check: database unreachable")
		httpresp.Unavailable(c, httpresp.Status{Status: "unavailable"})
		return
	}
	httpresp.OK(c, httpresp.Status{Status: "ok"})
}
