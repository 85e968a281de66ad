package db

import (
	"database/sql"
	"fmt"
	"regexp"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name can be used unquoted as a table or column
func ValidIdentifier(name string) bool {
	return identRe.MatchString(name)
}

// AddedDates returns the raw values of column in table, in rowid order.
// NULL values come back as empty strings.
func (d *DB) AddedDates(table, column string) ([]string, error) {
	if !ValidIdentifier(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}
	if !ValidIdentifier(column) {
		return nil, fmt.Errorf("invalid column name: %q", column)
	}

	rows, err := d.conn.Query(fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`, column, table))
	if err != nil {
		return nil, fmt.Errorf("querying %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		dates = append(dates, v.String)
	}
	return dates, rows.Err()
}
