package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
)

// DateLayout is the format of date_added values, e.g. "September 25, 2021"
const DateLayout = "January 2, 2006"

// ParseAddedDate parses a date_added value after trimming surrounding whitespace
func ParseAddedDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Tally is the result of one aggregation pass
type Tally struct {
	Counts  map[int]int `json:"counts"`
	Missing int         `json:"missing"`
	Records int         `json:"records"`
}

func newTally() *Tally {
	return &Tally{Counts: make(map[int]int)}
}

// SortedYears returns the counted years in ascending order
func (t *Tally) SortedYears() []int {
	years := make([]int, 0, len(t.Counts))
	for year := range t.Counts {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Aggregator turns date_added values into per-year counts. Empty values and
// values that fail to parse count as missing.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator returns an Aggregator logging to logger (slog.Default when nil)
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// CountCSV reads a header-less CSV whose first field is the date. Malformed
// records are logged and skipped.
func (a *Aggregator) CountCSV(r io.Reader) (*Tally, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1

	t := newTally()
	line := 0
	for {
		line++
		record, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				a.logger.Warn("skipping malformed record", "record", line, "error", err)
				continue
			}
			return nil, fmt.Errorf("reading record %d: %w", line, err)
		}
		value := ""
		if len(record) > 0 {
			value = record[0]
		}
		a.add(t, line, value)
	}

	a.logger.Info("records with missing dates", "missing", t.Missing, "records", t.Records)
	return t, nil
}

// CountFile runs CountCSV on the file at path
func (a *Aggregator) CountFile(path string) (*Tally, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return a.CountCSV(f)
}

// CountDates aggregates in-memory date values
func (a *Aggregator) CountDates(dates []string) *Tally {
	t := newTally()
	for i, value := range dates {
		a.add(t, i+1, value)
	}
	a.logger.Info("records with missing dates", "missing", t.Missing, "records", t.Records)
	return t
}

func (a *Aggregator) add(t *Tally, record int, value string) {
	t.Records++
	if strings.TrimSpace(value) == "" {
		t.Missing++
		return
	}
	date, err := ParseAddedDate(value)
	if err != nil {
		a.logger.Warn("skipping invalid date format", "record", record, "value", value, "error", err)
		t.Missing++
		return
	}
	t.Counts[date.Year()]++
}
