package roulette

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/parser"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/source"
	"github.com/xuri/excelize/v2"
)

// LoadFile loads a dataset from a local workbook.
func LoadFile(path string, opts Options) (*models.Dataset, error) {
	return Load(context.Background(), source.NewFileSource(path), opts)
}

// Load reads the workbook from src and builds the category list and the
// menu and restaurant indexes. Any failure is returned as a *LoadError.
func Load(ctx context.Context, src source.Source, opts Options) (*models.Dataset, error) {
	ds, _, err := LoadTables(ctx, src, opts)
	return ds, err
}

// LoadTables is Load that also returns the sheet records the dataset was
// built from, both taken from a single read of the workbook.
func LoadTables(ctx context.Context, src source.Source, opts Options) (*models.Dataset, *SheetTables, error) {
	name := src.String()

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, nil, NewLoadError(name, "", StageFetch, fmt.Errorf("%w: %v", ErrSourceUnreachable, err))
	}
	defer rc.Close()

	f, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, nil, NewLoadError(name, "", StageParse, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	tables, err := ReadSheets(f, opts)
	if err != nil {
		return nil, nil, withSource(err, name)
	}

	ds, err := buildDataset(tables, opts)
	if err != nil {
		return nil, nil, withSource(err, name)
	}

	ds.BookName = src.Name()
	ds.Source = name
	ds.LoadedAt = time.Now()
	return ds, tables, nil
}

// SheetTables holds the three required sheets read from a workbook.
type SheetTables struct {
	Category   *models.SheetTable `json:"category"`
	Menu       *models.SheetTable `json:"detail_menu"`
	Restaurant *models.SheetTable `json:"restaurants"`
}

// ReadSheets checks that every required sheet exists and is non-empty and
// reads each into header-keyed records.
func ReadSheets(f *excelize.File, opts Options) (*SheetTables, error) {
	layout := opts.sheets()

	present := make(map[string]bool)
	for _, s := range f.GetSheetList() {
		present[s] = true
	}

	var missing []string
	for _, s := range []string{layout.Category, layout.Menu, layout.Restaurant} {
		if !present[s] {
			missing = append(missing, fmt.Sprintf("%q", s))
		}
	}
	if len(missing) > 0 {
		return nil, NewLoadError("", "", StageSheets,
			fmt.Errorf("%w: %s", ErrSheetMissing, strings.Join(missing, ", ")))
	}

	read := func(sheetName string) (*models.SheetTable, error) {
		table, err := parser.ExtractTable(f, sheetName)
		if err != nil {
			return nil, NewLoadError("", sheetName, StageSheets, err)
		}
		if len(table.Records) == 0 {
			return nil, NewLoadError("", sheetName, StageSheets, ErrSheetEmpty)
		}
		return table, nil
	}

	var tables SheetTables
	var err error
	if tables.Category, err = read(layout.Category); err != nil {
		return nil, err
	}
	if tables.Menu, err = read(layout.Menu); err != nil {
		return nil, err
	}
	if tables.Restaurant, err = read(layout.Restaurant); err != nil {
		return nil, err
	}

	return &tables, nil
}

func buildDataset(tables *SheetTables, opts Options) (*models.Dataset, error) {
	layout := opts.sheets()
	ds := &models.Dataset{}

	policy := parser.RowPolicy{
		Strict: opts.Strict,
		OnSkip: func(issue parser.RowIssue) {
			ds.Stats.Skipped++
			if opts.OnSkip != nil {
				opts.OnSkip(issue)
			}
		},
	}

	categories, err := parser.BuildCategories(tables.Category, layout.CategoryColumn, policy)
	if err != nil {
		return nil, NewLoadError("", tables.Category.Name, StageIndex, err)
	}
	if len(categories) == 0 {
		return nil, NewLoadError("", tables.Category.Name, StageIndex, ErrSheetEmpty)
	}

	menus, err := parser.BuildIndex(tables.Menu, models.KindMenu, layout.CategoryColumn, layout.MenuColumn, categories, policy)
	if err != nil {
		return nil, NewLoadError("", tables.Menu.Name, StageIndex, err)
	}

	restaurants, err := parser.BuildIndex(tables.Restaurant, models.KindRestaurant, layout.CategoryColumn, layout.RestaurantColumn, categories, policy)
	if err != nil {
		return nil, NewLoadError("", tables.Restaurant.Name, StageIndex, err)
	}

	ds.Categories = categories
	ds.Menus = menus
	ds.Restaurants = restaurants
	ds.Stats.CategoryRows = len(tables.Category.Records)
	ds.Stats.MenuRows = len(tables.Menu.Records)
	ds.Stats.RestaurantRows = len(tables.Restaurant.Records)
	return ds, nil
}

func withSource(err error, name string) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.Source = name
	}
	return err
}
