package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lunch roulette JSON API",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd.Flags(), config.KeyAddr, config.KeyReload, config.KeyCORSOrigins, config.KeyDrawSize)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			load, err := loaderFor(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg, load)
		},
	}

	flags := cmd.Flags()
	flags.String(config.KeyAddr, "", "Listen address (default: :8080)")
	flags.String(config.KeyReload, "", `Cron spec for reloading the workbook, e.g. "@every 1h" (default: never)`)
	flags.String(config.KeyCORSOrigins, "", "Comma-separated origins allowed to call the API")
	flags.Int(config.KeyDrawSize, 0, "Maximum number of picks per draw (default: 2)")

	return cmd
}
