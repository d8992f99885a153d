// Package models defines data structures for the lunch roulette dataset.
package models

// Record represents a single data row of a sheet keyed by header name.
type Record struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// Values maps header name to trimmed cell text.
	Values map[string]string `json:"values"`
}

// Get returns the trimmed value for a header, or "" if the cell is blank.
func (r Record) Get(header string) string {
	return r.Values[header]
}

// SheetTable holds the header-keyed rows read from one sheet.
type SheetTable struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Range is the table region in Excel notation (e.g., "A1:B10").
	Range string `json:"range,omitempty"`
	// Headers lists the header cells left to right.
	Headers []string `json:"headers"`
	// Records contains non-blank data rows below the header.
	Records []Record `json:"records,omitempty"`
}
