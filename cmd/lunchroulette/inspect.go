package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/lunchroulette-go/internal/config"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/output"
)

type inspectFlags struct {
	outputPath string
	pretty     bool
	sheetsDir  string
}

func newInspectCmd(v *viper.Viper) *cobra.Command {
	var f inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the workbook and print the dataset as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, v, f)
		},
	}

	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet record files")

	return cmd
}

func runInspect(cmd *cobra.Command, v *viper.Viper, f inspectFlags) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	ds, tables, err := loadOnce(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	jsonData, err := output.DatasetToJSON(ds, f.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if f.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-sheet files
	if f.sheetsDir != "" {
		if err := writeSheetFiles(tables, f.sheetsDir, f.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// writeSheetFiles writes the records of each required sheet to
// <dir>/<sheet>.json.
func writeSheetFiles(tables *roulette.SheetTables, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, table := range []*models.SheetTable{tables.Category, tables.Menu, tables.Restaurant} {
		jsonData, err := output.SheetToJSON(table, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, table.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
