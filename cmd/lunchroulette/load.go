package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/parser"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/source"
)

// loadOptions returns loader options for cfg that log every skipped row.
func loadOptions(cfg config.Config) roulette.Options {
	opts := roulette.DefaultOptions()
	opts.Strict = cfg.Strict
	opts.OnSkip = func(issue parser.RowIssue) {
		log.Warn().
			Str("sheet", issue.Sheet).
			Int("row", issue.Row).
			Str("reason", issue.Reason).
			Msg("row skipped")
	}
	return opts
}

// loaderFor returns a function loading the dataset described by cfg.
func loaderFor(cfg config.Config) (func(ctx context.Context) (*models.Dataset, error), error) {
	src, err := source.Parse(cfg.Source, cfg.S3)
	if err != nil {
		return nil, err
	}

	opts := loadOptions(cfg)
	return func(ctx context.Context) (*models.Dataset, error) {
		return roulette.Load(ctx, src, opts)
	}, nil
}

// loadOnce loads the dataset for a one-shot command, together with the sheet
// records it was built from.
func loadOnce(ctx context.Context, cfg config.Config) (*models.Dataset, *roulette.SheetTables, error) {
	src, err := source.Parse(cfg.Source, cfg.S3)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	ds, tables, err := roulette.LoadTables(ctx, src, loadOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("load failed: %w", err)
	}
	return ds, tables, nil
}
