package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV escreve BOM + cabeçalho + uma linha por cliente
func WriteCSV(w io.Writer, clients []models.Client, loc *time.Location) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range clients {
		if err := cw.Write(Row(c, loc)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
