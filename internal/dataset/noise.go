package dataset

import "strings"

// noiseColumns are administrative columns that carry no analytical value and
// are always discarded after load. Both the Korean originals and the English
// equivalents are listed.
var noiseColumns = map[string]bool{
	"기관명":              true,
	"평가종류":             true,
	"시작일":              true,
	"종료일":              true,
	"발행번호":             true,
	"institution_name": true,
	"evaluation_type":  true,
	"start_date":       true,
	"end_date":         true,
	"issue_number":     true,
}

// isPlaceholderColumn reports whether a column name looks like an
// auto-generated positional placeholder produced by spreadsheet parsing.
func isPlaceholderColumn(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed == "" || strings.HasPrefix(trimmed, "Unnamed")
}

// StripNoise returns a copy of the table with every noise column and every
// auto-generated placeholder column removed. It is a no-op for tables that
// carry none of them, works on zero-row tables, and is idempotent.
func StripNoise(t Table) Table {
	var drop []string
	for _, c := range t.Columns {
		if noiseColumns[c] || isPlaceholderColumn(c) {
			drop = append(drop, c)
		}
	}
	if len(drop) == 0 {
		return t.Clone()
	}
	return t.DropColumns(drop...)
}
