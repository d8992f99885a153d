// Package parser turns workbook sheets into category lookup tables.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Region is the bounding box of non-empty cells in a sheet (0-based, inclusive).
type Region struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Ref returns the region in Excel range notation (e.g., "A1:D10").
func (r Region) Ref() string {
	startCell, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// FindTableRegion finds the table-like region of a sheet.
// Leading blank rows and columns (titles placed lower, tables indented to
// the right) are excluded. ok is false when the sheet has no data at all.
func FindTableRegion(rows [][]string) (Region, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Region{}, false
	}
	return Region{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
