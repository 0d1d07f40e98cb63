// =============================================================================
// CSV Normalizer - XLSX Input Reader
// =============================================================================
//
// This package reads .xlsx workbooks into records so spreadsheet exports can
// run through the same normalization pipeline as CSV files. Only the first
// sheet is read; each row becomes one record.
//
// Excelize drops trailing empty cells when reading rows, so rows shorter
// than the expected 8 columns are padded with empty fields. That mirrors
// the tokenizer's trailing-delimiter rule: a missing trailing field is an
// empty field, not a malformed record. Rows with more than 8 cells are
// returned as-is and rejected by the processor's shape check.
//
// =============================================================================

package xlsxreader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"csv-normalizer/internal/field"
)

// ReadRecords opens the workbook at path and returns the rows of its first
// sheet as records.
func ReadRecords(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		records = append(records, padRow(row))
	}

	return records, nil
}

// isRowEmpty reports whether a row contains no cell values at all.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// padRow extends a short row to the full record width with empty fields.
func padRow(row []string) []string {
	if len(row) >= field.Count {
		return row
	}
	padded := make([]string, field.Count)
	copy(padded, row)
	return padded
}
