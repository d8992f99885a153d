// Package server exposes the lunch roulette over a JSON HTTP API.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
)

// LoadFunc produces a fresh dataset.
type LoadFunc func(ctx context.Context) (*models.Dataset, error)

// Holder keeps the current dataset and the error of the last failed load.
// A dataset, once stored, is never modified; reloads replace it wholesale.
type Holder struct {
	load    LoadFunc
	timeout time.Duration

	current atomic.Pointer[models.Dataset]

	// reloadMu serializes reloads so the stored dataset and lastErr always
	// come from the same, most recent load.
	reloadMu sync.Mutex

	mu      sync.RWMutex
	lastErr error
}

// NewHolder returns an empty holder that loads with fn.
func NewHolder(fn LoadFunc, timeout time.Duration) *Holder {
	return &Holder{load: fn, timeout: timeout}
}

// Reload runs the loader. On failure the previous dataset (if any) is kept
// and the error is remembered for LastError. Concurrent calls run one at a time.
func (h *Holder) Reload(ctx context.Context) error {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	ds, err := h.load(ctx)

	h.mu.Lock()
	h.lastErr = err
	h.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("dataset load failed")
		return err
	}

	h.current.Store(ds)
	log.Info().
		Str("source", ds.Source).
		Int("categories", len(ds.Categories)).
		Int("menus", ds.Menus.Len()).
		Int("restaurants", ds.Restaurants.Len()).
		Int("skipped_rows", ds.Stats.Skipped).
		Msg("dataset loaded")
	return nil
}

// Dataset returns the current dataset, or nil if no load has succeeded.
func (h *Holder) Dataset() *models.Dataset {
	return h.current.Load()
}

// LastError returns the error of the most recent load, or nil if it succeeded.
func (h *Holder) LastError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}
