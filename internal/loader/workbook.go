// Package loader reads uploaded Excel workbooks into dataset tables.
// Sheet 1 holds findings, an optional sheet 2 holds the standard clause
// requirements. A missing or unreadable standards sheet is not an error;
// callers substitute the built-in defaults and continue.
package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
)

var (
	// ErrEmptyWorkbook is returned when the workbook has no sheets.
	ErrEmptyWorkbook = errors.New("workbook contains no sheets")
	// ErrEmptySheet is returned when a sheet has no header row.
	ErrEmptySheet = errors.New("sheet has no header row")
)

// ParseWorkbook reads an xlsx workbook: the first sheet becomes the findings
// table, the second the standards table. standards is nil when the workbook
// has a single sheet or the second sheet cannot be read into a table.
func ParseWorkbook(r io.Reader) (findings dataset.Table, standards *dataset.Table, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return dataset.Table{}, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataset.Table{}, nil, ErrEmptyWorkbook
	}

	findings, err = sheetToTable(f, sheets[0])
	if err != nil {
		return dataset.Table{}, nil, fmt.Errorf("findings sheet: %w", err)
	}

	if len(sheets) > 1 {
		if std, stdErr := sheetToTable(f, sheets[1]); stdErr == nil {
			standards = &std
		}
	}
	return findings, standards, nil
}

// sheetToTable converts a sheet to a table using the first row as headers.
// Empty headers get positional placeholder names in the pandas style
// ("Unnamed: N") so the noise stripper removes them later.
func sheetToTable(f *excelize.File, sheet string) (dataset.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return dataset.Table{}, ErrEmptySheet
	}

	header := rows[0]
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
	}

	t := dataset.NewTable(columns...)
	for _, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			if i < len(raw) {
				row[col] = strings.TrimSpace(raw[i])
			} else {
				row[col] = ""
			}
		}
		t.Append(row)
	}
	return t, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
