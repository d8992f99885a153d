package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/xuri/excelize/v2"
)

// ErrColumnMissing indicates a required header is not present in a sheet.
var ErrColumnMissing = errors.New("required column missing")

// ExtractTable reads a sheet as a header row followed by data rows.
// Rows with no non-blank cell under a named header are dropped.
func ExtractTable(f *excelize.File, sheetName string) (*models.SheetTable, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return tableFromRows(sheetName, rows), nil
}

func tableFromRows(sheetName string, rows [][]string) *models.SheetTable {
	table := &models.SheetTable{Name: sheetName}

	region, ok := FindTableRegion(rows)
	if !ok {
		return table
	}
	table.Range = region.Ref()

	header := rows[region.MinRow]
	// colIdx -> header name; blank headers and repeats are not addressable.
	names := make(map[int]string)
	seen := make(map[string]bool)
	for colIdx := region.MinCol; colIdx <= region.MaxCol; colIdx++ {
		name := ""
		if colIdx < len(header) {
			name = strings.TrimSpace(header[colIdx])
		}
		table.Headers = append(table.Headers, name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names[colIdx] = name
	}

	for rowIdx := region.MinRow + 1; rowIdx <= region.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		values := make(map[string]string)
		hasData := false
		for colIdx, name := range names {
			if colIdx >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[colIdx])
			if v == "" {
				continue
			}
			values[name] = v
			hasData = true
		}
		if hasData {
			table.Records = append(table.Records, models.Record{
				R:      rowIdx + 1, // 1-based row index
				Values: values,
			})
		}
	}

	return table
}

// ResolveColumn finds the header matching want. An exact match wins over a
// case-insensitive one.
func ResolveColumn(table *models.SheetTable, want string) (string, error) {
	for _, h := range table.Headers {
		if h == want {
			return h, nil
		}
	}
	for _, h := range table.Headers {
		if h != "" && strings.EqualFold(h, want) {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q in sheet %q", ErrColumnMissing, want, table.Name)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
