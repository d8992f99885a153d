package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/output"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

type drawFlags struct {
	kind   string
	seed   uint64
	json   bool
	pretty bool
}

func newDrawCmd(v *viper.Viper) *cobra.Command {
	var f drawFlags

	cmd := &cobra.Command{
		Use:   "draw [category...]",
		Short: "Draw random menus or restaurants from the given categories",
		Example: `  lunchroulette draw Korean Chinese
  lunchroulette draw --kind restaurant Japanese`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd.Flags(), config.KeyDrawSize)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, v, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.kind, "kind", "k", string(models.KindMenu), "What to draw: menu or restaurant")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed for a reproducible draw (default: time-based)")
	cmd.Flags().Int(config.KeyDrawSize, selector.DefaultSize, "Maximum number of picks")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the draw result as JSON")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runDraw(cmd *cobra.Command, v *viper.Viper, f drawFlags, args []string) error {
	kind, ok := models.ParseKind(f.kind)
	if !ok {
		return fmt.Errorf("invalid kind: %s (must be menu or restaurant)", f.kind)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	ds, _, err := loadOnce(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sel := selector.NewRandom()
	if cmd.Flags().Changed("seed") {
		sel = selector.NewSeeded(f.seed)
	}
	sel.WithSize(cfg.DrawSize)

	selected := models.NewSelectionSet()
	for _, arg := range args {
		selected.Add(strings.TrimSpace(arg))
	}
	for _, c := range selected.Sorted() {
		if !ds.HasCategory(c) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown category %q (available: %s)\n",
				c, strings.Join(ds.Categories, ", "))
		}
	}

	result := sel.Draw(selected, ds.IndexFor(kind))

	if f.json {
		data, err := output.DrawToJSON(result, f.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	prefix := "🎲"
	if kind == models.KindRestaurant {
		prefix = "🏠"
	}
	if result.IsSentinel() {
		prefix = "❌"
	}
	for _, item := range result.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", prefix, item)
	}
	return nil
}
