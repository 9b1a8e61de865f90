package table

import "strings"

// Delimiter separates fields within a row. Fixed; the lookup path does no
// quote-aware splitting, so a quoted field containing a comma reads back as
// two fields.
const Delimiter = ","

// Table is an immutable ordered sequence of raw CSV lines. A Table is
// replaced wholesale by each load, never mutated in place. The zero value
// is an empty Table.
type Table struct {
	lines []string
}

// Load wraps the given lines verbatim, preserving order. An empty or nil
// sequence yields an empty Table; treating that as an error is the
// caller's decision. The input slice is copied.
func Load(lines []string) Table {
	if len(lines) == 0 {
		return Table{}
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Table{lines: cp}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.lines)
}

// Row returns the raw line at the given 1-based index, or "" when the
// index is out of range.
func (t Table) Row(row int) string {
	if row < 1 || row > len(t.lines) {
		return ""
	}
	return t.lines[row-1]
}

// Lines returns a copy of all rows in order.
func (t Table) Lines() []string {
	cp := make([]string, len(t.lines))
	copy(cp, t.lines)
	return cp
}

// Cell returns the field at the given 1-based row and column, trimmed of
// surrounding whitespace. Any index outside the table yields "" rather
// than an error. The row is split on Delimiter with no quote awareness;
// a trailing delimiter produces a trailing empty field that counts toward
// the column total.
func (t Table) Cell(row, col int) string {
	if row < 1 || row > len(t.lines) || col < 1 {
		return ""
	}
	fields := strings.Split(t.lines[row-1], Delimiter)
	if col > len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[col-1])
}

// Serialize concatenates each row followed by a newline, in input order.
// Rows are written as given: no re-splitting, no validation, and no field
// escaping. Callers that need escaping apply EscapeField to individual
// fields before assembling a row.
func Serialize(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// EscapeField quotes a field when it contains the delimiter, a newline, or
// a quote character, doubling embedded quotes. Other fields pass through
// unchanged.
func EscapeField(field string) string {
	if !strings.ContainsAny(field, Delimiter+"\n\"") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
