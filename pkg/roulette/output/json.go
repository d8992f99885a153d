// Package output serializes datasets and draw results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
)

// ToJSON serializes any value, indenting with two spaces when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DatasetToJSON serializes a loaded dataset.
func DatasetToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	return ToJSON(ds, pretty)
}

// SheetToJSON serializes the records of one sheet.
func SheetToJSON(table *models.SheetTable, pretty bool) ([]byte, error) {
	return ToJSON(table, pretty)
}

// DrawToJSON serializes a draw result.
func DrawToJSON(result models.DrawResult, pretty bool) ([]byte, error) {
	if result.Items == nil {
		result.Items = []string{}
	}
	return ToJSON(result, pretty)
}
