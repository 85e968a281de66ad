package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"netflixgraph/internal/graph"
)

var dotOutput string

var dotCmd = &cobra.Command{
	Use:   "dot [cleaned.csv]",
	Short: "Render the year graph as Graphviz DOT",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tally, err := loadTally(cfg, logger, optionalArg(args))
		if err != nil {
			return err
		}
		out := graph.RenderDOT(buildGraph(tally, logger), dotOptions(cfg))

		if dotOutput == "" || dotOutput == "-" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}
		return writeDOT(dotOutput, out)
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "Write DOT to this file instead of stdout")
	rootCmd.AddCommand(dotCmd)
}

func writeDOT(path, dot string) error {
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return fmt.Errorf("writing DOT file: %w", err)
	}
	logger.Info("wrote graph", "path", path, "bytes", len(dot))
	return nil
}
