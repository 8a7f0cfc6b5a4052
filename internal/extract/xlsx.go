package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// extractXLSX renders the first sheet of a workbook as an aligned text
// table, rows in sheet order. Remaining sheets are ignored.
func extractXLSX(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return renderTable(rows), nil
}
