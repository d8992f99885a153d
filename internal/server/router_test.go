package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

func testDataset() *models.Dataset {
	ds := &models.Dataset{
		BookName:    "menu.xlsx",
		Source:      "menu.xlsx",
		Categories:  []string{"Korean", "Chinese"},
		Menus:       models.NewIndex(models.KindMenu),
		Restaurants: models.NewIndex(models.KindRestaurant),
	}
	ds.Menus.Add("Korean", "Bibimbap")
	ds.Menus.Add("Korean", "Kimchi Stew")
	ds.Menus.Add("Chinese", "Jjajangmyeon")
	ds.Restaurants.Add("Korean", "Hanok")
	return ds
}

func newTestRouter(t *testing.T, load LoadFunc) (*gin.Engine, *Holder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	holder := NewHolder(load, 0)
	_ = holder.Reload(context.Background())
	return NewRouter(holder, selector.NewSeeded(1), []string{"http://localhost:5173"}), holder
}

func okLoad(context.Context) (*models.Dataset, error) {
	return testDataset(), nil
}

func failLoad(context.Context) (*models.Dataset, error) {
	return nil, errors.New(`required sheet missing: "restaurants"`)
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t, failLoad)

	w := doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDPassThrough(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCategories(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	w := doRequest(r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Korean", "Chinese"}, body.Categories)
}

func TestDrawMenu(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	w := doRequest(r, http.MethodPost, "/draw/menu", `{"categories":["Korean"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.DrawResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.DrawOK, result.Status)
	assert.Equal(t, models.KindMenu, result.Kind)
	assert.ElementsMatch(t, []string{"Bibimbap", "Kimchi Stew"}, result.Items)
}

func TestDrawSentinels(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	tests := []struct {
		path     string
		body     string
		status   models.DrawStatus
		expected string
	}{
		{"/draw/menu", `{"categories":[]}`, models.DrawNoSelection, models.NoSelectionMessage},
		{"/draw/restaurant", `{}`, models.DrawNoSelection, models.NoSelectionMessage},
		{"/draw/restaurant", `{"categories":["Chinese"]}`, models.DrawNoData, models.NoRestaurantDataMessage},
		{"/draw/menu", `{"categories":["Thai"]}`, models.DrawNoData, models.NoMenuDataMessage},
	}

	for _, tt := range tests {
		w := doRequest(r, http.MethodPost, tt.path, tt.body)
		require.Equal(t, http.StatusOK, w.Code, tt.body)

		var result models.DrawResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, tt.status, result.Status, tt.body)
		assert.Equal(t, []string{tt.expected}, result.Items, tt.body)
	}
}

func TestDrawBadRequest(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	w := doRequest(r, http.MethodPost, "/draw/menu", `{"categories":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/draw/dessert", `{"categories":["Korean"]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnavailableWhenLoadFailed(t *testing.T) {
	r, _ := newTestRouter(t, failLoad)

	for _, path := range []string{"/categories", "/dataset"} {
		w := doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}

	w := doRequest(r, http.MethodPost, "/draw/menu", `{"categories":["Korean"]}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, UnavailableMessage, body["message"])
	assert.Contains(t, body["error"], "restaurants")
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t, okLoad)

	req := httptest.NewRequest(http.MethodOptions, "/draw/menu", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
