package models

import "time"

// Dataset is the immutable result of one load.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Source describes where the workbook was read from.
	Source string `json:"source"`
	// Categories lists the selectable categories in sheet order.
	Categories []string `json:"categories"`
	// Menus maps category to menu names.
	Menus Index `json:"menus"`
	// Restaurants maps category to restaurant names.
	Restaurants Index `json:"restaurants"`
	// Stats counts rows read and skipped during the load.
	Stats LoadStats `json:"stats"`
	// LoadedAt is when the load finished.
	LoadedAt time.Time `json:"loaded_at"`
}

// IndexFor returns the index for a flow.
func (d *Dataset) IndexFor(kind Kind) Index {
	if kind == KindRestaurant {
		return d.Restaurants
	}
	return d.Menus
}

// HasCategory reports whether label is one of the dataset's categories.
func (d *Dataset) HasCategory(label string) bool {
	for _, c := range d.Categories {
		if c == label {
			return true
		}
	}
	return false
}

// LoadStats counts rows per sheet.
type LoadStats struct {
	CategoryRows   int `json:"category_rows"`
	MenuRows       int `json:"menu_rows"`
	RestaurantRows int `json:"restaurant_rows"`
	// Skipped counts rows dropped by the lenient row policy.
	Skipped int `json:"skipped"`
}
