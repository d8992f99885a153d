package roulette

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/parser"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/source"
	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves the sheets to a temporary xlsx file and returns its path.
func writeWorkbook(t *testing.T, sheets ...sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			row := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "menu.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func scenarioSheets() []sheet {
	return []sheet{
		{"category", [][]interface{}{
			{"Category"},
			{"Korean"},
			{"Chinese"},
		}},
		{"detail_menu", [][]interface{}{
			{"Category", "Menu"},
			{"Korean", "Bibimbap"},
			{"Korean", "Kimchi Stew"},
			{"Chinese", "Jjajangmyeon"},
		}},
		{"restaurants", [][]interface{}{
			{"Category", "Restaurant"},
			{"Chinese", "Hongkong Banjeom"},
			{"Korean", "Hanok"},
		}},
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeWorkbook(t, scenarioSheets()...)

	ds, err := LoadFile(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "menu.xlsx", ds.BookName)
	assert.Equal(t, []string{"Korean", "Chinese"}, ds.Categories)
	assert.Equal(t, []string{"Bibimbap", "Kimchi Stew"}, ds.Menus.Lookup("Korean"))
	assert.Equal(t, []string{"Jjajangmyeon"}, ds.Menus.Lookup("Chinese"))
	assert.Equal(t, []string{"Hanok"}, ds.Restaurants.Lookup("Korean"))
	assert.Equal(t, models.KindRestaurant, ds.Restaurants.Kind)
	assert.Equal(t, models.LoadStats{CategoryRows: 2, MenuRows: 3, RestaurantRows: 2}, ds.Stats)
	assert.False(t, ds.LoadedAt.IsZero())

	for _, ix := range []models.Index{ds.Menus, ds.Restaurants} {
		for c := range ix.Entries {
			assert.True(t, ds.HasCategory(c), "dangling category %q", c)
		}
	}

	result := DrawMenus(ds, models.NewSelectionSet("Korean"))
	assert.ElementsMatch(t, []string{"Bibimbap", "Kimchi Stew"}, result.Items)
	result = DrawMenus(ds, models.NewSelectionSet("Chinese"))
	assert.Equal(t, []string{"Jjajangmyeon"}, result.Items)
	result = DrawRestaurants(ds, models.NewSelectionSet())
	assert.Equal(t, []string{models.NoSelectionMessage}, result.Items)
}

func TestLoadTables(t *testing.T) {
	path := writeWorkbook(t, scenarioSheets()...)

	ds, tables, err := LoadTables(context.Background(), source.NewFileSource(path), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, tables)

	assert.Equal(t, "category", tables.Category.Name)
	assert.Len(t, tables.Menu.Records, ds.Stats.MenuRows)
	assert.Len(t, tables.Restaurant.Records, ds.Stats.RestaurantRows)
	assert.Equal(t, "Kimchi Stew", tables.Menu.Records[1].Get("Menu"))

	_, tables, err = LoadTables(context.Background(), source.NewFileSource(filepath.Join(t.TempDir(), "nope.xlsx")), DefaultOptions())
	assert.Error(t, err)
	assert.Nil(t, tables)
}

func TestLoadMissingSheets(t *testing.T) {
	sheets := scenarioSheets()
	path := writeWorkbook(t, sheets[0])

	_, err := LoadFile(path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetMissing))
	assert.Contains(t, err.Error(), `"detail_menu"`)
	assert.Contains(t, err.Error(), `"restaurants"`)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, StageSheets, le.Stage)
	assert.Equal(t, path, le.Source)
}

func TestLoadEmptySheet(t *testing.T) {
	sheets := scenarioSheets()
	sheets[2].rows = [][]interface{}{{"Category", "Restaurant"}}
	path := writeWorkbook(t, sheets...)

	_, err := LoadFile(path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetEmpty))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "restaurants", le.Sheet)
}

func TestLoadAllCategoriesSkipped(t *testing.T) {
	sheets := scenarioSheets()
	sheets[0].rows = [][]interface{}{{"Category", "Note"}, {"", "nothing"}}
	path := writeWorkbook(t, sheets...)

	_, err := LoadFile(path, DefaultOptions())
	assert.True(t, errors.Is(err, ErrSheetEmpty))
}

func TestLoadMissingColumn(t *testing.T) {
	sheets := scenarioSheets()
	sheets[1].rows = [][]interface{}{{"Category", "Dish"}, {"Korean", "Bibimbap"}}
	path := writeWorkbook(t, sheets...)

	_, err := LoadFile(path, DefaultOptions())
	assert.True(t, errors.Is(err, ErrColumnMissing))
}

func TestLoadRowPolicy(t *testing.T) {
	sheets := scenarioSheets()
	sheets[1].rows = append(sheets[1].rows,
		[]interface{}{"Thai", "Pad Thai"},
		[]interface{}{"Korean", nil},
	)
	path := writeWorkbook(t, sheets...)

	var issues []parser.RowIssue
	opts := DefaultOptions()
	opts.OnSkip = func(i parser.RowIssue) { issues = append(issues, i) }

	ds, err := LoadFile(path, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Stats.Skipped)
	require.Len(t, issues, 2)
	assert.Equal(t, 5, issues[0].Row)
	assert.Equal(t, "detail_menu", issues[0].Sheet)
	assert.Equal(t, []string{"Bibimbap", "Kimchi Stew"}, ds.Menus.Lookup("Korean"))

	opts.Strict = true
	_, err = LoadFile(path, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRow))
	assert.Contains(t, err.Error(), "row 5")
}

func TestLoadCustomSheets(t *testing.T) {
	sheets := scenarioSheets()
	sheets[0].name = "kinds"
	path := writeWorkbook(t, sheets...)

	opts := Options{Sheets: Sheets{Category: "kinds"}}
	ds, err := LoadFile(path, opts)
	require.NoError(t, err)
	assert.Len(t, ds.Categories, 2)
}

func TestLoadSourceErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions())
	assert.True(t, errors.Is(err, ErrSourceUnreachable))

	bad := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0644))
	_, err = LoadFile(bad, DefaultOptions())
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestLoadHTTP(t *testing.T) {
	path := writeWorkbook(t, scenarioSheets()...)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu.xlsx" {
			http.Error(w, "gone", http.StatusServiceUnavailable)
			return
		}
		http.ServeFile(w, r, path)
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), source.NewHTTPSource(srv.URL+"/menu.xlsx", nil), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Korean", "Chinese"}, ds.Categories)

	_, err = Load(context.Background(), source.NewHTTPSource(srv.URL+"/other.xlsx", nil), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnreachable))
	assert.Contains(t, err.Error(), fmt.Sprintf("HTTP error: %d", http.StatusServiceUnavailable))
}
