// findings-report is a one-shot tool: it loads a findings workbook (or the
// built-in sample data), runs the same strip/enrich/filter pipeline as the
// web service, and writes the display columns as JSON or CSV.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
	"github.com/jineuihong-coder/iso-findings/internal/engine"
	"github.com/jineuihong-coder/iso-findings/internal/loader"
)

func main() {
	in := flag.String("in", "", "input xlsx workbook (sheet 1 findings, sheet 2 standards); omit to use the built-in sample data")
	out := flag.String("out", "-", "output file, or - for stdout")
	format := flag.String("format", "json", "output format: json | csv")
	clauses := flag.String("clause", "", "comma-separated exact clause values to keep")
	subclauses := flag.String("subclause", "", "comma-separated exact subclause values to keep")
	categories := flag.String("category", "", "comma-separated exact category values to keep")
	keyword := flag.String("keyword", "", "case-insensitive substring over content")
	clauseSearch := flag.String("clause-search", "", "substring over clause or subclause")
	flag.Parse()

	findings, standards, err := loadTables(*in)
	if err != nil {
		slog.Error("failed to load input", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := engine.EnrichWithRequirements(dataset.StripNoise(findings), standards)
	filtered := engine.Apply(pipeline, engine.Criteria{
		Clauses:      splitList(*clauses),
		Subclauses:   splitList(*subclauses),
		Categories:   splitList(*categories),
		Keyword:      *keyword,
		ClauseSearch: *clauseSearch,
	})
	result := filtered.Select(dataset.DisplayColumns(filtered)...)

	w, closeFn, err := openOutput(*out)
	if err != nil {
		slog.Error("failed to open output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeFn()

	switch *format {
	case "json":
		err = writeJSON(w, result)
	case "csv":
		err = writeCSV(w, result)
	default:
		err = fmt.Errorf("unknown format: %s", *format)
	}
	if err != nil {
		slog.Error("failed to write output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadTables(path string) (dataset.Table, *dataset.Table, error) {
	if path == "" {
		std := dataset.DefaultStandards()
		return dataset.DefaultFindings(), &std, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return dataset.Table{}, nil, err
	}
	defer f.Close()

	findings, standards, err := loader.ParseWorkbook(f)
	if err != nil {
		return dataset.Table{}, nil, err
	}
	if standards == nil {
		std := dataset.DefaultStandards()
		standards = &std
	}
	return findings, standards, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func writeJSON(w io.Writer, t dataset.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func writeCSV(w io.Writer, t dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			record[i] = row[c]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
