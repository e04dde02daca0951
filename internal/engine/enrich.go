// Package engine implements the requirement-matching join, the filter
// predicates, and the aggregate views over findings tables. Every operation
// is a pure function over dataset.Table values: inputs are never mutated,
// missing data degrades to pass-through or empty results, never to an error.
package engine

import (
	"github.com/jineuihong-coder/iso-findings/internal/dataset"
)

// RequirementColumn is the canonical name of the column the matcher adds.
const RequirementColumn = "requirement"

// EnrichWithRequirements attaches the matched requirement text from the
// standards table to every finding row as a new "requirement" column.
//
// Matching is exact string equality, per row: the finding's subclause value
// is tried first, then its clause value. When the standards table contains
// duplicate clause identifiers the first occurrence wins. Rows that match
// nothing get an empty string; the requirement value is always a string,
// never absent. No hierarchical inference happens: "7.1.1" does not match a
// standards entry "7.1".
//
// When standards is nil, or it lacks a recognizable clause-identifier or
// requirement-text column, findings is returned as an unmodified copy with
// no column added.
func EnrichWithRequirements(findings dataset.Table, standards *dataset.Table) dataset.Table {
	if standards == nil {
		return findings.Clone()
	}
	clauseCol, ok := dataset.ResolveStandardClause(*standards)
	if !ok {
		return findings.Clone()
	}
	reqCol, ok := dataset.ResolveStandardRequirement(*standards)
	if !ok {
		return findings.Clone()
	}

	// First occurrence wins on duplicate clause identifiers.
	byClause := make(map[string]string, standards.Len())
	for _, r := range standards.Rows {
		id := r[clauseCol]
		if _, seen := byClause[id]; !seen {
			byClause[id] = r[reqCol]
		}
	}

	subCol, hasSub := dataset.ResolveRole(findings, dataset.RoleSubclause)
	mainCol, hasMain := dataset.ResolveRole(findings, dataset.RoleClause)

	values := make([]string, 0, findings.Len())
	for _, row := range findings.Rows {
		text := ""
		matched := false
		if hasSub {
			text, matched = byClause[row[subCol]]
		}
		if !matched && hasMain {
			text = byClause[row[mainCol]]
		}
		values = append(values, text)
	}
	return findings.AddColumn(RequirementColumn, values)
}
