package cmd

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"netflixgraph/internal/config"
	"netflixgraph/internal/graph"
	"netflixgraph/internal/ingest"
)

const rawDataset = `show_id,type,title,director,cast,country,date_added,release_year
s1,Movie,A,,,US,"March 1, 2019",2018
s2,Movie,B,,,US,"April 2, 2019",2018
s3,TV Show,C,,,US,"May 3, 2020",2020
s4,TV Show,D,,,US," June 4, 2020",2020
s5,Movie,E,,,US,"July 5, 2020",2019
s6,Movie,F,,,US,"August 6, 2022",2021
s7,Movie,G,,,US,,2021
s8,Movie,H,,,US,not a date,2021
`

// resetFlags puts every flag back to its default so package-level state does
// not leak between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

type workspace struct {
	dir, raw, cleaned, dot, config string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		dir:     dir,
		raw:     filepath.Join(dir, "netflix_data.csv"),
		cleaned: filepath.Join(dir, "cleaned.csv"),
		dot:     filepath.Join(dir, "graph.dot"),
		config:  filepath.Join(dir, "config.yaml"),
	}
	require.NoError(t, os.WriteFile(ws.raw, []byte(rawDataset), 0644))
	cfgYAML := fmt.Sprintf("input:\n  raw_file: %q\n  cleaned_file: %q\noutput:\n  dot_file: %q\n",
		ws.raw, ws.cleaned, ws.dot)
	require.NoError(t, os.WriteFile(ws.config, []byte(cfgYAML), 0644))
	return ws
}

func TestRun_Pipeline(t *testing.T) {
	ws := newWorkspace(t)

	out, logs, err := execute(t, "run", "--config", ws.config)
	require.NoError(t, err)

	assert.Contains(t, out, "Records: 8  Missing dates: 2")
	assert.Contains(t, out, "Total years: 3")
	assert.Contains(t, out, "Total transitions: 2")
	assert.Contains(t, out, "Total additions: 3")
	assert.Contains(t, out, "Average additions per year: 1.00")
	assert.Contains(t, out, "Greatest change in additions was between 2019 and 2020: 3 additions")
	assert.Contains(t, logs, "skipping invalid date format")

	cleaned, err := os.ReadFile(ws.cleaned)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(cleaned), "\n"))

	dot, err := os.ReadFile(ws.dot)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "0 -> 1 [label=\"3\"];")
	assert.Contains(t, string(dot), "1 -> 2 [label=\"0\"];")
}

func TestAnalyze_JSON(t *testing.T) {
	ws := newWorkspace(t)
	_, err := ingest.ProjectColumnFile(ws.raw, ws.cleaned, ingest.DateAddedColumn)
	require.NoError(t, err)

	out, _, err := execute(t, "analyze", "--json", ws.cleaned)
	require.NoError(t, err)

	var got struct {
		Records      int                   `json:"records"`
		MissingDates int                   `json:"missing_dates"`
		Summary      graph.Summary         `json:"summary"`
		PerYear      []graph.YearAdditions `json:"per_year"`
		Greatest     graph.GreatestChange  `json:"greatest_change"`
		Components   int                   `json:"chain_components"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 8, got.Records)
	assert.Equal(t, 2, got.MissingDates)
	assert.Equal(t, 3, got.Summary.TotalYears)
	assert.Equal(t, 3, got.Summary.TotalAdditions)
	assert.Equal(t, []graph.YearAdditions{
		{Year: 2019, Additions: 3},
		{Year: 2020, Additions: 0},
		{Year: 2022, Additions: 0},
	}, got.PerYear)
	assert.Equal(t, graph.GreatestChange{PrevYear: 2019, Year: 2020, Additions: 3}, got.Greatest)
	assert.Equal(t, 1, got.Components)
}

func TestAnalyze_FromDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.db")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = conn.Exec(`
		CREATE TABLE titles (show_id TEXT, date_added TEXT);
		INSERT INTO titles VALUES ('s1', 'January 5, 2016'), ('s2', 'May 9, 2017'),
			('s3', 'June 1, 2017'), ('s4', NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	out, _, err := execute(t, "analyze", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 4  Missing dates: 1")
	assert.Contains(t, out, "Greatest change in additions was between 2016 and 2017: 2 additions")
}

func TestAnalyze_MissingInput(t *testing.T) {
	_, _, err := execute(t, "analyze", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestDot_Stdout(t *testing.T) {
	ws := newWorkspace(t)
	_, err := ingest.ProjectColumnFile(ws.raw, ws.cleaned, ingest.DateAddedColumn)
	require.NoError(t, err)

	out, _, err := execute(t, "dot", ws.cleaned)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph {\n"))
	assert.Contains(t, out, "0 [label=\"2019\", color=black, shape=circle];")
}

func TestClean_Flags(t *testing.T) {
	ws := newWorkspace(t)
	target := filepath.Join(ws.dir, "projected.csv")

	out, _, err := execute(t, "clean", "--input", ws.raw, "--output", target, "--column", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 8 rows")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "A\nB\n"))
}

func TestConfig_PrintAndWrite(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "date_column: 6")
	assert.Contains(t, out, "highlight_threshold: 1000")

	path := filepath.Join(t.TempDir(), "written.yaml")
	_, _, err = execute(t, "config", "--write", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "config", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestPrintHumanReadable_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	printHumanReadable(&buf, &ingest.Tally{Counts: map[int]int{}}, graph.BuildReport(graph.NewYearGraph()))

	assert.Contains(t, buf.String(), "Total years: 0")
	assert.Contains(t, buf.String(), "Average additions per year: 0.00")
	assert.Contains(t, buf.String(), "No year-over-year additions recorded")
	assert.NotContains(t, buf.String(), "ADDITIONS PER YEAR")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10, 30))
	assert.Equal(t, "", bar(5, 0, 30))
	assert.Equal(t, strings.Repeat("█", 30), bar(10, 10, 30))
	assert.Equal(t, "█", bar(1, 1000, 30))
}
