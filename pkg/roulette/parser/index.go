package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
)

// ErrInvalidRow indicates a row that strict mode refuses to skip.
var ErrInvalidRow = errors.New("invalid row")

// RowIssue describes a row that could not be used.
type RowIssue struct {
	Sheet  string
	Row    int
	Reason string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("sheet %q row %d: %s", i.Sheet, i.Row, i.Reason)
}

// RowPolicy decides what happens to unusable rows.
type RowPolicy struct {
	// Strict fails on the first unusable row instead of skipping it.
	Strict bool
	// OnSkip is called for every skipped row in lenient mode. May be nil.
	OnSkip func(RowIssue)
}

func (p RowPolicy) reject(issue RowIssue) error {
	if p.Strict {
		return fmt.Errorf("%w: %s", ErrInvalidRow, issue)
	}
	if p.OnSkip != nil {
		p.OnSkip(issue)
	}
	return nil
}

// BuildCategories extracts the category labels in row order.
// Duplicate labels keep their first occurrence.
func BuildCategories(table *models.SheetTable, column string, policy RowPolicy) ([]string, error) {
	col, err := ResolveColumn(table, column)
	if err != nil {
		return nil, err
	}

	var categories []string
	seen := make(map[string]bool)
	for _, rec := range table.Records {
		label := rec.Get(col)
		switch {
		case label == "":
			err = policy.reject(RowIssue{Sheet: table.Name, Row: rec.R, Reason: "blank " + column})
		case seen[label]:
			err = policy.reject(RowIssue{Sheet: table.Name, Row: rec.R, Reason: fmt.Sprintf("duplicate %s %q", column, label)})
		default:
			seen[label] = true
			categories = append(categories, label)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	return categories, nil
}

// BuildIndex groups the label column by the category column, keeping row
// order within each category. Rows naming a category outside known are
// rejected so the index never refers to an unknown category.
func BuildIndex(table *models.SheetTable, kind models.Kind, categoryColumn, labelColumn string, known []string, policy RowPolicy) (models.Index, error) {
	index := models.NewIndex(kind)

	catCol, err := ResolveColumn(table, categoryColumn)
	if err != nil {
		return index, err
	}
	labelCol, err := ResolveColumn(table, labelColumn)
	if err != nil {
		return index, err
	}

	allowed := make(map[string]bool, len(known))
	for _, c := range known {
		allowed[c] = true
	}

	for _, rec := range table.Records {
		category := rec.Get(catCol)
		label := rec.Get(labelCol)

		var reason string
		switch {
		case category == "":
			reason = "blank " + categoryColumn
		case label == "":
			reason = "blank " + labelColumn
		case !allowed[category]:
			reason = fmt.Sprintf("unknown %s %q", categoryColumn, category)
		default:
			index.Add(category, label)
			continue
		}

		if err := policy.reject(RowIssue{Sheet: table.Name, Row: rec.R, Reason: reason}); err != nil {
			return index, err
		}
	}

	return index, nil
}
