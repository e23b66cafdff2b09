package models

import (
	"slices"
	"time"
)

// DateLayout is the layout of the date key stored in the first column
const DateLayout = "2006-01-02"

// DateColumn is the index of the date key column
const DateColumn = 0

// Table holds the header and rows of the weights file. All cells are text.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable creates a table with the given header and no rows
func NewTable(header []string) Table {
	return Table{
		Header: slices.Clone(header),
		Rows:   make([][]string, 0),
	}
}

// IsEmpty reports whether the table has no header. An empty table means
// nothing has been stored yet.
func (t Table) IsEmpty() bool {
	return len(t.Header) == 0
}

// ColumnIndex returns the position of the named column or -1
func (t Table) ColumnIndex(name string) int {
	return slices.Index(t.Header, name)
}

// IsDateColumn reports whether name is the date key column
func (t Table) IsDateColumn(name string) bool {
	return len(t.Header) > DateColumn && t.Header[DateColumn] == name
}

// FindRowByDate returns the index of the first row whose date cell equals
// date, scanning in memory order, or -1.
func (t Table) FindRowByDate(date string) int {
	for i, row := range t.Rows {
		if len(row) > DateColumn && row[DateColumn] == date {
			return i
		}
	}
	return -1
}

// BlankRow builds a row for date with an empty cell for every other column
func (t Table) BlankRow(date string) []string {
	row := make([]string, len(t.Header))
	if len(row) > DateColumn {
		row[DateColumn] = date
	}
	return row
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = slices.Clone(row)
	}
	return Table{
		Header: slices.Clone(t.Header),
		Rows:   rows,
	}
}

// FormatDate renders a time as a date key
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date key
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
