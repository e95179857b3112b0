package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Status struct {
	Status string `json:"status"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, data)
}
