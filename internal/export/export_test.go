package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/client-tracker/internal/models"
)

var tpe = time.FixedZone("TPE", 8*3600)

func sampleClients() []models.Client {
	return []models.Client{
		{
			Name:            "Wang",
			HouseAddress:    "台北市X路1號",
			RegisterAddress: "同左",
			FirstContact:    time.Date(2026, 10, 18, 6, 5, 59, 0, time.UTC),
			NextFollow:      time.Date(2026, 11, 1, 6, 5, 59, 0, time.UTC),
			Notes:           "喜歡, 有停車位",
		},
		{
			Name:            "Chen",
			HouseAddress:    "A",
			RegisterAddress: "B",
			FirstContact:    time.Date(2026, 10, 18, 17, 0, 0, 0, time.UTC),
			NextFollow:      time.Date(2026, 10, 19, 16, 0, 0, 0, time.UTC),
		},
	}
}

func TestRow_FormatsInLocation(t *testing.T) {
	row := Row(sampleClients()[1], tpe)
	assert.Equal(t, []string{"Chen", "A", "B", "2026-10-19 01:00", "2026-10-20", ""}, row)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleClients(), tpe))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, utf8BOM))

	records, err := csv.NewReader(bytes.NewReader(raw[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"Wang", "台北市X路1號", "同左", "2026-10-18 14:05", "2026-11-01", "喜歡, 有停車位"}, records[1])
	assert.Equal(t, "Chen", records[2][0])
}

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, tpe))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{Header}, records)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleClients(), tpe))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Wang", "台北市X路1號", "同左", "2026-10-18 14:05", "2026-11-01", "喜歡, 有停車位"}, rows[1])
	// células vazias no fim da linha não voltam no GetRows
	require.GreaterOrEqual(t, len(rows[2]), 5)
	assert.Equal(t, []string{"Chen", "A", "B", "2026-10-19 01:00", "2026-10-20"}, rows[2][:5])
}

func TestWriteXLSX_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, []models.Client{}, tpe))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{Header}, rows)
}
