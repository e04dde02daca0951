// Package services holds the application services between the HTTP layer and
// the engine. The findings service owns the loaded snapshot and runs the
// strip → enrich → filter pipeline on it.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
	"github.com/jineuihong-coder/iso-findings/internal/engine"
	"github.com/jineuihong-coder/iso-findings/internal/loader"
)

// DefaultSource names the built-in dataset in snapshot status responses.
const DefaultSource = "built-in defaults"

// Snapshot is the immutable result of one load: findings already stripped of
// noise columns and enriched with requirement text. Filtering only ever reads
// from it; a new upload swaps in a whole new snapshot.
type Snapshot struct {
	Findings  dataset.Table
	Standards dataset.Table
	Source    string
	LoadedAt  time.Time
}

// SnapshotStatus describes the current snapshot for API consumers.
type SnapshotStatus struct {
	Source    string    `json:"source"`
	LoadedAt  time.Time `json:"loaded_at"`
	Rows      int       `json:"rows"`
	Standards int       `json:"standards"`
}

// SummaryReport carries the three aggregate views derived for charting.
type SummaryReport struct {
	Total          int                 `json:"total"`
	ByClause       []engine.GroupCount `json:"by_clause"`
	BySubclause    []engine.GroupCount `json:"by_subclause"`
	CategoryShares []engine.GroupShare `json:"category_shares"`
}

// FilterOptions lists the distinct values available for the set criteria.
type FilterOptions struct {
	Clauses    []string `json:"clauses"`
	Subclauses []string `json:"subclauses"`
	Categories []string `json:"categories"`
}

// FindingsService loads findings/standards tables and serves filtered views
// over the current snapshot.
type FindingsService struct {
	mu     sync.RWMutex
	snap   *Snapshot
	logger *slog.Logger
}

// NewFindingsService creates a findings service seeded with the built-in
// default dataset.
func NewFindingsService(logger *slog.Logger) *FindingsService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FindingsService{
		logger: logger.With(slog.String("component", "findings_service")),
	}
	s.snap = buildSnapshot(dataset.DefaultFindings(), dataset.DefaultStandards(), DefaultSource)
	return s
}

// buildSnapshot runs the load-time half of the pipeline: strip noise columns,
// then enrich with requirement text.
func buildSnapshot(findings, standards dataset.Table, source string) *Snapshot {
	stripped := dataset.StripNoise(findings)
	enriched := engine.EnrichWithRequirements(stripped, &standards)
	return &Snapshot{
		Findings:  enriched,
		Standards: standards,
		Source:    source,
		LoadedAt:  time.Now(),
	}
}

func (s *FindingsService) snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// LoadWorkbook parses an uploaded workbook and swaps in a new snapshot.
// A missing or unreadable standards sheet falls back to the built-in
// standards; an unreadable findings sheet is an error and leaves the current
// snapshot in place.
func (s *FindingsService) LoadWorkbook(ctx context.Context, r io.Reader, source string) error {
	findings, standards, err := loader.ParseWorkbook(r)
	if err != nil {
		return fmt.Errorf("load workbook %q: %w", source, err)
	}

	var std dataset.Table
	if standards != nil {
		std = *standards
	} else {
		std = dataset.DefaultStandards()
		s.logger.WarnContext(ctx, "workbook has no standards sheet, using defaults",
			slog.String("source", source))
	}

	snap := buildSnapshot(findings, std, source)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "workbook loaded",
		slog.String("source", source),
		slog.Int("findings", snap.Findings.Len()),
		slog.Int("standards", snap.Standards.Len()))
	return nil
}

// Reset discards any uploaded data and returns to the built-in defaults.
func (s *FindingsService) Reset(ctx context.Context) {
	snap := buildSnapshot(dataset.DefaultFindings(), dataset.DefaultStandards(), DefaultSource)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "snapshot reset to defaults")
}

// Search filters the current snapshot and projects the fixed display columns
// (clause, subclause, category, requirement, content — those present).
func (s *FindingsService) Search(ctx context.Context, c engine.Criteria) (dataset.Table, error) {
	snap := s.snapshot()
	filtered := engine.Apply(snap.Findings, c)

	s.logger.DebugContext(ctx, "search executed",
		slog.Int("matched", filtered.Len()),
		slog.Int("total", snap.Findings.Len()))

	return filtered.Select(dataset.DisplayColumns(filtered)...), nil
}

// Summary derives the three aggregate views over the filtered rows so charts
// reflect the active filter.
func (s *FindingsService) Summary(ctx context.Context, c engine.Criteria) (*SummaryReport, error) {
	snap := s.snapshot()
	filtered := engine.Apply(snap.Findings, c)

	return &SummaryReport{
		Total:          filtered.Len(),
		ByClause:       engine.CountBy(filtered, dataset.RoleClause),
		BySubclause:    engine.CountBy(filtered, dataset.RoleSubclause),
		CategoryShares: engine.ShareBy(filtered, dataset.RoleCategory),
	}, nil
}

// FilterOptions returns the distinct values for the sidebar multiselects.
// Columns the snapshot lacks yield empty lists.
func (s *FindingsService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	snap := s.snapshot()
	return &FilterOptions{
		Clauses:    distinctRoleValues(snap.Findings, dataset.RoleClause),
		Subclauses: distinctRoleValues(snap.Findings, dataset.RoleSubclause),
		Categories: distinctRoleValues(snap.Findings, dataset.RoleCategory),
	}, nil
}

// Status describes the current snapshot.
func (s *FindingsService) Status(ctx context.Context) *SnapshotStatus {
	snap := s.snapshot()
	return &SnapshotStatus{
		Source:    snap.Source,
		LoadedAt:  snap.LoadedAt,
		Rows:      snap.Findings.Len(),
		Standards: snap.Standards.Len(),
	}
}

func distinctRoleValues(t dataset.Table, role dataset.Role) []string {
	col, ok := dataset.ResolveRole(t, role)
	if !ok {
		return []string{}
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range t.Values(col) {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
