package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// extractCSV parses content as comma-separated data with a header row and
// renders it as an aligned text table, rows in source order.
func extractCSV(content []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse CSV: %w", err)
	}
	return renderTable(rows), nil
}
