package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// DateAddedColumn is the position of date_added in the raw titles export
const DateAddedColumn = 6

// ProjectColumn copies one field of every record of a headed CSV into a
// single-column CSV without header. Records shorter than column produce an
// empty field. It returns the number of rows written.
func ProjectColumn(r io.Reader, w io.Writer, column int) (int, error) {
	if column < 0 {
		return 0, fmt.Errorf("invalid column index %d", column)
	}

	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true

	if _, err := rdr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}

	wtr := csv.NewWriter(w)
	rows := 0
	for {
		record, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("reading record %d: %w", rows+1, err)
		}

		field := ""
		if column < len(record) {
			field = record[column]
		}
		if field == "" {
			// csv.Writer emits a blank line here, which readers skip
			wtr.Flush()
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return rows, fmt.Errorf("writing record %d: %w", rows+1, err)
			}
			rows++
			continue
		}
		if err := wtr.Write([]string{field}); err != nil {
			return rows, fmt.Errorf("writing record %d: %w", rows+1, err)
		}
		rows++
	}

	wtr.Flush()
	return rows, wtr.Error()
}

// ProjectColumnFile runs ProjectColumn from inPath into outPath
func ProjectColumnFile(inPath, outPath string, column int) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}

	rows, err := ProjectColumn(in, out, column)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	return rows, err
}
