package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"netflixgraph/internal/config"
	"netflixgraph/internal/db"
	"netflixgraph/internal/graph"
	"netflixgraph/internal/ingest"
)

var (
	configPath string
	dbPath     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "netflixgraph",
	Short:         "Year-over-year additions graph for a titles catalogue",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd.ErrOrStderr())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (or set "+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Read date_added values from this SQLite database instead of CSV")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
}

// loadSettings resolves config and logger for the current invocation
func loadSettings(logOut io.Writer) error {
	c, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Input.DBPath = dbPath
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := newLogger(c.Logging, logOut)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

func newLogger(lc config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// loadTally aggregates yearly counts from SQLite when a database is
// configured, otherwise from the cleaned CSV at csvPath
func loadTally(c *config.Config, l *slog.Logger, csvPath string) (*ingest.Tally, error) {
	agg := ingest.NewAggregator(l)

	if c.Input.DBPath != "" {
		d, err := db.OpenDB(c.Input.DBPath)
		if err != nil {
			return nil, err
		}
		defer d.Close()

		dates, err := d.AddedDates(c.Input.DBTable, c.Input.DBColumn)
		if err != nil {
			return nil, fmt.Errorf("loading dates: %w", err)
		}
		l.Debug("loaded dates from database", "path", c.Input.DBPath, "rows", len(dates))
		return agg.CountDates(dates), nil
	}

	if csvPath == "" {
		csvPath = c.Input.CleanedFile
	}
	tally, err := agg.CountFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("loading dates: %w", err)
	}
	return tally, nil
}

// buildGraph runs both construction passes over a tally
func buildGraph(t *ingest.Tally, l *slog.Logger) *graph.YearGraph {
	g := graph.FromCounts(t.Counts)
	l.Debug("built year graph", "years", g.NodeCount(), "transitions", g.EdgeCount())
	return g
}

func dotOptions(c *config.Config) graph.DOTOptions {
	return graph.DOTOptions{
		HighlightThreshold: c.Output.HighlightThreshold,
		RankDir:            strings.ToUpper(c.Output.RankDir),
	}
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
