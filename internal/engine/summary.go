package engine

import (
	"sort"

	"github.com/jineuihong-coder/iso-findings/internal/dataset"
)

// GroupCount is one bar of a count-by-group chart.
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupShare is one slice of a proportion chart.
type GroupShare struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// CountBy counts rows per distinct value of the role column, sorted by value
// for deterministic output. An absent role column yields an empty slice; the
// corresponding chart is simply omitted upstream.
func CountBy(t dataset.Table, role dataset.Role) []GroupCount {
	col, ok := dataset.ResolveRole(t, role)
	if !ok {
		return []GroupCount{}
	}
	counts := make(map[string]int)
	for _, r := range t.Rows {
		counts[r[col]]++
	}
	out := make([]GroupCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, GroupCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// ShareBy counts rows per distinct value of the role column and attaches each
// group's share of the total, sorted by value. An absent role column or an
// empty table yields an empty slice.
func ShareBy(t dataset.Table, role dataset.Role) []GroupShare {
	col, ok := dataset.ResolveRole(t, role)
	if !ok || t.Len() == 0 {
		return []GroupShare{}
	}
	counts := make(map[string]int)
	for _, r := range t.Rows {
		counts[r[col]]++
	}
	total := float64(t.Len())
	out := make([]GroupShare, 0, len(counts))
	for v, n := range counts {
		out = append(out, GroupShare{Value: v, Count: n, Share: float64(n) / total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
