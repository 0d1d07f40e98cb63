package xlsxreader

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
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"TIMESTAMP", "ZIP", "FULLNAME", "ADDRESS", "FOODURATION", "BARDURATION", "TOTALDURATION", "NOTES"},
		{"4/1/11 11:00:00 AM", "94121", "bob", "main st", "1:23:32.123", "1:32:33.123", "x", "hi"},
	})

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "TIMESTAMP", records[0][0])
	assert.Equal(t, "94121", records[1][1])
	assert.Len(t, records[1], 8)
}

func TestReadRecords_ShortRowsPadded(t *testing.T) {
	// Trailing empty cells are dropped by the xlsx reader; the record
	// must still come back with 8 fields.
	path := writeWorkbook(t, [][]interface{}{
		{"4/1/11 11:00:00 AM", "94121", "bob", "main st", "1:23:32.123", "1:32:33.123", "x"},
	})

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0], 8)
	assert.Equal(t, "", records[0][7])
}

func TestReadRecords_EmptyRowsSkipped(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"4/1/11 11:00:00 AM", "94121", "bob", "main st", "1:23:32.123", "1:32:33.123", "x", "hi"},
		{},
		{"4/2/11 11:00:00 AM", "94122", "alice", "side st", "0:00:01.000", "0:00:02.000", "x", "yo"},
	})

	records, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
