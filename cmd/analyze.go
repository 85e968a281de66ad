package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"netflixgraph/internal/graph"
	"netflixgraph/internal/ingest"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [cleaned.csv]",
	Short: "Aggregate additions per year and report totals and the greatest change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tally, err := loadTally(cfg, logger, optionalArg(args))
		if err != nil {
			return err
		}

		report := graph.BuildReport(buildGraph(tally, logger))

		if analyzeJSON {
			return writeJSON(cmd.OutOrStdout(), tally, report)
		}
		printHumanReadable(cmd.OutOrStdout(), tally, report)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

type jsonReport struct {
	Records      int `json:"records"`
	MissingDates int `json:"missing_dates"`
	*graph.Report
}

func writeJSON(w io.Writer, tally *ingest.Tally, report *graph.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Records:      tally.Records,
		MissingDates: tally.Missing,
		Report:       report,
	})
}

func printHumanReadable(w io.Writer, tally *ingest.Tally, report *graph.Report) {
	s := report.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  SUMMARY")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  Records: %d  Missing dates: %d\n", tally.Records, tally.Missing)
	fmt.Fprintf(w, "  Total years: %d\n", s.TotalYears)
	fmt.Fprintf(w, "  Total transitions: %d\n", s.TotalTransitions)
	fmt.Fprintf(w, "  Total additions: %d\n", s.TotalAdditions)
	fmt.Fprintf(w, "  Average additions per year: %.2f\n", s.AveragePerYear)
	if report.ChainComponents > 1 {
		fmt.Fprintf(w, "  Warning: chain is split into %d pieces\n", report.ChainComponents)
	}

	if len(report.PerYear) > 0 {
		peak := 0
		for _, y := range report.PerYear {
			if y.Additions > peak {
				peak = y.Additions
			}
		}
		fmt.Fprintln(w, "\n  ADDITIONS PER YEAR")
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		for _, y := range report.PerYear {
			fmt.Fprintf(w, "  Year %d: %6d  %s\n", y.Year, y.Additions, bar(y.Additions, peak, 30))
		}
	}

	fmt.Fprintln(w)
	c := report.GreatestChange
	if c.Found() {
		fmt.Fprintf(w, "  Greatest change in additions was between %d and %d: %d additions\n",
			c.PrevYear, c.Year, c.Additions)
	} else {
		fmt.Fprintln(w, "  No year-over-year additions recorded")
	}
	fmt.Fprintln(w)
}

func bar(value, peak, width int) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := value * width / peak
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
