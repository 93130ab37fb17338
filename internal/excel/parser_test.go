package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestParseSessions(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Lớp", "Môn", "Giáo viên", "Phòng", "Ngày", "Tiết", "Số tiết", "Nhóm", "Ghi chú"},
		{"Kế toán K15", "Nguyên lý kế toán", "Trần Thị Hà", "P101", "2025-03-10", 1, 3, "", ""},
		{"Kế toán K15", "Nguyên lý kế toán", "Trần Thị Hà", "P101", "2025-03-17", 6, 2, "Nhóm 1", "thực hành"},
	})

	rows, err := ParseSessions(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Kế toán K15", rows[0].ClassName)
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, 1, rows[0].StartPeriod)
	assert.Equal(t, 3, rows[0].PeriodCount)
	assert.Equal(t, "", rows[0].Group)

	assert.Equal(t, "Nhóm 1", rows[1].Group)
	assert.Equal(t, "thực hành", rows[1].Note)
}

func TestParseSessionsSkipsBadRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Lớp", "Môn", "Giáo viên", "Phòng", "Ngày", "Tiết", "Số tiết"},
		{"Kế toán K15", "Toán", "GV", "P101", "10/03/2025", 1, 3}, // wrong date format
		{"Kế toán K15", "Toán", "GV", "P101", "2025-03-10", 15, 3}, // period out of range
		{"Kế toán K15", "", "GV", "P101", "2025-03-10", 1, 3},      // missing subject
		{"Kế toán K15", "Toán", "GV", "P101", "2025-03-10", 1, 3},
	})

	rows, err := ParseSessions(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].RowNumber)
}
