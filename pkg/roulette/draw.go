package roulette

import (
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

var defaultSelector = selector.NewRandom()

// Draw picks up to two entries from the selected categories of index using
// a process-wide time-seeded source.
func Draw(selected models.SelectionSet, index models.Index) models.DrawResult {
	return defaultSelector.Draw(selected, index)
}

// DrawMenus draws from the dataset's menu index.
func DrawMenus(ds *models.Dataset, selected models.SelectionSet) models.DrawResult {
	return Draw(selected, ds.Menus)
}

// DrawRestaurants draws from the dataset's restaurant index.
func DrawRestaurants(ds *models.Dataset, selected models.SelectionSet) models.DrawResult {
	return Draw(selected, ds.Restaurants)
}
