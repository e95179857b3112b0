package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-tracker/internal/export"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/metrics"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
	ucClient "github.com/BruksfildServices01/client-tracker/internal/usecase/client"
)

type writeFunc func(w io.Writer, clients []models.Client, loc *time.Location) error

type ExportHandler struct {
	export *ucClient.ExportClients
	loc    *time.Location
}

func NewExportHandler(uc *ucClient.ExportClients, loc *time.Location) *ExportHandler {
	return &ExportHandler{export: uc, loc: loc}
}

func (h *ExportHandler) CSV(c *gin.Context) {
	h.serve(c, export.CSV, export.WriteCSV)
}

func (h *ExportHandler) Excel(c *gin.Context) {
	h.serve(c, export.XLSX, export.WriteXLSX)
}

// serve monta o arquivo em memória, por requisição, e envia como anexo
func (h *ExportHandler) serve(c *gin.Context, format export.Format, write writeFunc) {
	s := session.MustFrom(c)

	clients, err := h.export.Execute(c.Request.Context(), s)
	if err != nil {
		httperr.Internal(c, "export_"+format.Name, err)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, clients, h.loc); err != nil {
		httperr.Internal(c, "export_"+format.Name, err)
		return
	}

	metrics.ExportsTotal.WithLabelValues(format.Name).Inc()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName))
	c.Data(http.StatusOK, format.ContentType, buf.Bytes())
}
