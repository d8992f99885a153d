// Package main provides the CLI entry point for lunchroulette.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/internal/logging"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "lunchroulette",
		Short: "Randomly pick today's lunch menu and restaurant",
		Long: `lunchroulette loads food categories, menus and restaurants from an
Excel workbook (sheets: category, detail_menu, restaurants) and draws
random picks from the categories you choose.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			logging.Setup(v.GetString(config.KeyLogLevel), v.GetBool(config.KeyLogJSON))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	flags.String(config.KeySource, "", "Workbook location: path, http(s) URL or s3://bucket/key (default: menu.xlsx)")
	flags.Bool(config.KeyStrict, false, "Fail on blank, duplicate or unknown-category rows instead of skipping them")
	flags.String(config.KeyLogLevel, "", "Log level: debug, info, warn, error (default: info)")
	flags.Bool(config.KeyLogJSON, false, "Write logs as JSON")
	if err := bindFlags(v, flags, config.KeySource, config.KeyStrict, config.KeyLogLevel, config.KeyLogJSON); err != nil {
		log.Fatal().Err(err).Msg("bind flags")
	}

	rootCmd.AddCommand(
		newDrawCmd(v),
		newInspectCmd(v),
		newServeCmd(v),
	)
	return rootCmd
}

// bindFlags binds the named flags to viper keys of the same name. Subcommands
// call it from PreRunE because several of them define the same key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}
