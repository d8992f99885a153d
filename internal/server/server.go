package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

// Run loads the dataset, starts the optional reload schedule and serves the
// API on cfg.Addr until ctx is cancelled. A failed initial load does not stop
// the server; draw endpoints report it instead.
func Run(ctx context.Context, cfg config.Config, load LoadFunc) error {
	gin.SetMode(gin.ReleaseMode)

	holder := NewHolder(load, cfg.LoadTimeout)
	_ = holder.Reload(ctx)

	if cfg.ReloadSpec != "" {
		reloader, err := NewReloader(holder, cfg.ReloadSpec)
		if err != nil {
			return err
		}
		reloader.Start()
		defer reloader.Stop()
	}

	sel := selector.NewRandom().WithSize(cfg.DrawSize)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(holder, sel, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("lunch roulette API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}
