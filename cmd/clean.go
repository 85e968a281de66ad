package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"netflixgraph/internal/ingest"
)

var (
	cleanInput  string
	cleanOutput string
	cleanColumn int
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Project the date_added column of the raw dataset into a one-column CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("input") {
			cfg.Input.RawFile = cleanInput
		}
		if cmd.Flags().Changed("output") {
			cfg.Input.CleanedFile = cleanOutput
		}
		if cmd.Flags().Changed("column") {
			cfg.Input.DateColumn = cleanColumn
		}

		rows, err := cleanRaw()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", rows, cfg.Input.CleanedFile)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "", "Raw CSV dataset (default input.raw_file)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "Cleaned CSV to write (default input.cleaned_file)")
	cleanCmd.Flags().IntVar(&cleanColumn, "column", ingest.DateAddedColumn, "Zero-based index of the date column")
	rootCmd.AddCommand(cleanCmd)
}

func cleanRaw() (int, error) {
	rows, err := ingest.ProjectColumnFile(cfg.Input.RawFile, cfg.Input.CleanedFile, cfg.Input.DateColumn)
	if err != nil {
		return rows, fmt.Errorf("cleaning %s: %w", cfg.Input.RawFile, err)
	}
	logger.Info("projected date column", "input", cfg.Input.RawFile, "output", cfg.Input.CleanedFile,
		"column", cfg.Input.DateColumn, "rows", rows)
	return rows, nil
}
