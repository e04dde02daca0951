package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripNoise(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		wantCols []string
	}{
		{
			name:     "korean noise columns removed",
			columns:  []string{"기관명", "clause", "평가종류", "content", "발행번호"},
			wantCols: []string{"clause", "content"},
		},
		{
			name:     "english noise columns removed",
			columns:  []string{"institution_name", "clause", "start_date", "end_date", "issue_number", "evaluation_type"},
			wantCols: []string{"clause"},
		},
		{
			name:     "placeholder columns removed",
			columns:  []string{"clause", "Unnamed: 3", "Unnamed: 4", ""},
			wantCols: []string{"clause"},
		},
		{
			name:     "no-op when nothing matches",
			columns:  []string{"clause", "subclause", "category", "content"},
			wantCols: []string{"clause", "subclause", "category", "content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable(tt.columns...)
			row := Row{}
			for _, c := range tt.columns {
				row[c] = "v"
			}
			tbl.Append(row)

			got := StripNoise(tbl)

			assert.Equal(t, tt.wantCols, got.Columns)
			assert.Equal(t, 1, got.Len())
			assert.Equal(t, tt.columns, tbl.Columns, "input untouched")
		})
	}
}

func TestStripNoise_Idempotent(t *testing.T) {
	tbl := NewTable("기관명", "clause", "Unnamed: 2")
	tbl.Append(Row{"기관명": "기관", "clause": "7", "Unnamed: 2": ""})

	once := StripNoise(tbl)
	twice := StripNoise(once)

	assert.Equal(t, once, twice)
}

func TestStripNoise_EmptyTable(t *testing.T) {
	tbl := NewTable("시작일", "clause")

	got := StripNoise(tbl)

	require.Equal(t, 0, got.Len())
	assert.Equal(t, []string{"clause"}, got.Columns, "schema change applies even with zero rows")
}
