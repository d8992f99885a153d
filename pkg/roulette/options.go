// Package roulette loads a lunch menu workbook and draws random picks from it.
package roulette

import "github.com/ukaji3/lunchroulette-go/pkg/roulette/parser"

// Sheets names the required sheets and their columns.
type Sheets struct {
	// Category is the sheet listing selectable categories.
	Category string
	// Menu is the sheet listing menu items per category.
	Menu string
	// Restaurant is the sheet listing restaurants per category.
	Restaurant string

	// CategoryColumn is the category header used by all three sheets.
	CategoryColumn string
	// MenuColumn is the menu name header in the Menu sheet.
	MenuColumn string
	// RestaurantColumn is the restaurant name header in the Restaurant sheet.
	RestaurantColumn string
}

// DefaultSheets returns the standard workbook layout.
func DefaultSheets() Sheets {
	return Sheets{
		Category:         "category",
		Menu:             "detail_menu",
		Restaurant:       "restaurants",
		CategoryColumn:   "Category",
		MenuColumn:       "Menu",
		RestaurantColumn: "Restaurant",
	}
}

// Options configures loading behavior.
type Options struct {
	// Sheets overrides sheet and column names. Zero fields use the defaults.
	Sheets Sheets
	// Strict fails the load on blank, duplicate or unknown-category rows
	// instead of skipping them.
	Strict bool
	// OnSkip is called for each row skipped in lenient mode. May be nil.
	OnSkip func(parser.RowIssue)
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Sheets: DefaultSheets(),
	}
}

// sheets returns the configured layout with blanks filled from the defaults.
func (o Options) sheets() Sheets {
	s := o.Sheets
	d := DefaultSheets()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Category, d.Category)
	fill(&s.Menu, d.Menu)
	fill(&s.Restaurant, d.Restaurant)
	fill(&s.CategoryColumn, d.CategoryColumn)
	fill(&s.MenuColumn, d.MenuColumn)
	fill(&s.RestaurantColumn, d.RestaurantColumn)
	return s
}
