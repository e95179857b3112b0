// Package export gera a carteira de clientes visível em CSV ou XLSX.
package export

import (
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/models"
)

const (
	FirstContactLayout = "2006-01-02 15:04"
	NextFollowLayout   = "2006-01-02"

	SheetName = "客戶資料"
)

// Header é fixo, no idioma do operador
var Header = []string{"客戶姓名", "房屋地址", "戶籍地址", "第一次開發", "下次跟進", "備註"}

type Format struct {
	Name        string
	FileName    string
	ContentType string
}

var (
	CSV = Format{
		Name:        "csv",
		FileName:    "clients_export.csv",
		ContentType: "text/csv; charset=utf-8",
	}
	XLSX = Format{
		Name:        "xlsx",
		FileName:    "clients_export.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
)

// Row formata um cliente na ordem do Header
func Row(c models.Client, loc *time.Location) []string {
	return []string{
		c.Name,
		c.HouseAddress,
		c.RegisterAddress,
		c.FirstContact.In(loc).Format(FirstContactLayout),
		c.NextFollow.In(loc).Format(NextFollowLayout),
		c.Notes,
	}
}
