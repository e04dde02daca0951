package engine

import (
	"strings"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
)

// Criteria is the explicit filter input constructed by the caller from user
// selections. An empty field contributes no constraint; non-empty fields are
// combined with logical AND.
type Criteria struct {
	// Clauses keeps rows whose clause value is an exact member.
	Clauses []string `json:"clauses" validate:"max=50,dive,max=100"`
	// Subclauses keeps rows whose subclause value is an exact member.
	Subclauses []string `json:"subclauses" validate:"max=50,dive,max=100"`
	// Categories keeps rows whose category value is an exact member.
	Categories []string `json:"categories" validate:"max=50,dive,max=100"`
	// Keyword keeps rows whose content contains it, case-insensitively.
	Keyword string `json:"keyword" validate:"max=200"`
	// ClauseSearch keeps rows whose clause OR subclause contains it as a
	// substring, matched as typed.
	ClauseSearch string `json:"clause_search" validate:"max=100"`
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return len(c.Clauses) == 0 &&
		len(c.Subclauses) == 0 &&
		len(c.Categories) == 0 &&
		c.Keyword == "" &&
		c.ClauseSearch == ""
}

// Apply filters the table by the given criteria and returns the matching rows
// in their original order. The result is always a copy; the input table is
// never mutated and its column set passes through unchanged.
//
// With all criteria empty the full table is returned unchanged. That is a
// deliberate "show everything when nothing is specified" rule, stated here
// explicitly rather than left to fall out of empty predicates AND-ing to
// all-true: the engine has no separate "search triggered" flag, criteria
// content alone decides.
func Apply(t dataset.Table, c Criteria) dataset.Table {
	if c.IsEmpty() {
		return t.Clone()
	}

	clauseCol, hasClause := dataset.ResolveRole(t, dataset.RoleClause)
	subCol, hasSub := dataset.ResolveRole(t, dataset.RoleSubclause)
	catCol, hasCat := dataset.ResolveRole(t, dataset.RoleCategory)
	contentCol, hasContent := dataset.ResolveRole(t, dataset.RoleContent)

	keep := func(row dataset.Row) bool {
		// Set criteria constrain nothing when the table lacks the column.
		if hasClause && len(c.Clauses) > 0 && !contains(c.Clauses, row[clauseCol]) {
			return false
		}
		if hasSub && len(c.Subclauses) > 0 && !contains(c.Subclauses, row[subCol]) {
			return false
		}
		if hasCat && len(c.Categories) > 0 && !contains(c.Categories, row[catCol]) {
			return false
		}
		if hasContent && c.Keyword != "" {
			content, ok := row[contentCol]
			if !ok || !strings.Contains(strings.ToLower(content), strings.ToLower(c.Keyword)) {
				return false
			}
		}
		if c.ClauseSearch != "" {
			// Substring match against either identifier field. A table with
			// neither column matches nothing for this criterion.
			hit := false
			if hasClause && strings.Contains(row[clauseCol], c.ClauseSearch) {
				hit = true
			}
			if !hit && hasSub && strings.Contains(row[subCol], c.ClauseSearch) {
				hit = true
			}
			if !hit {
				return false
			}
		}
		return true
	}

	out := dataset.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]dataset.Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		if keep(row) {
			out.Append(row.Clone())
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
