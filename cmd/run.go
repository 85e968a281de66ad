package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"netflixgraph/internal/graph"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean the raw dataset, analyze it and write the DOT graph",
	Long: `Runs the whole pipeline with the configured paths:
project input.raw_file into input.cleaned_file, aggregate additions per year,
print the report and write output.dot_file. With --db the dates are read from
SQLite and the cleaning step is skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(w io.Writer) error {
	if cfg.Input.DBPath == "" {
		if _, err := cleanRaw(); err != nil {
			return err
		}
	}

	tally, err := loadTally(cfg, logger, "")
	if err != nil {
		return err
	}
	g := buildGraph(tally, logger)

	printHumanReadable(w, tally, graph.BuildReport(g))

	if cfg.Output.DOTFile == "" {
		return nil
	}
	return writeDOT(cfg.Output.DOTFile, graph.RenderDOT(g, dotOptions(cfg)))
}
