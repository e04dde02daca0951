package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes an in-memory xlsx with one row-grid per sheet, in
// sheet order.
func buildWorkbook(t *testing.T, sheets map[string][][]string, order []string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, cells := range sheets[name] {
			for c, v := range cells {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseWorkbook_TwoSheets(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause", "subclause", "category", "content"},
			{"7", "7.1", "부적합", "자원 충분성 미확보"},
			{"9.2", "9.2.2", "권고", "고객만족도 조사 개선 필요"},
		},
		"standards": {
			{"조항", "요구사항"},
			{"7.1", "조직은 인프라를 포함한 필요한 자원을 제공해야 한다."},
		},
	}, []string{"findings", "standards"})

	findings, standards, err := ParseWorkbook(buf)

	require.NoError(t, err)
	assert.Equal(t, []string{"clause", "subclause", "category", "content"}, findings.Columns)
	require.Equal(t, 2, findings.Len())
	assert.Equal(t, "자원 충분성 미확보", findings.Rows[0]["content"])

	require.NotNil(t, standards)
	require.Equal(t, 1, standards.Len())
	assert.Equal(t, "7.1", standards.Rows[0]["조항"])
}

func TestParseWorkbook_SingleSheet(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause", "content"},
			{"7", "x"},
		},
	}, []string{"findings"})

	findings, standards, err := ParseWorkbook(buf)

	require.NoError(t, err)
	assert.Equal(t, 1, findings.Len())
	assert.Nil(t, standards, "no second sheet means no standards table")
}

func TestParseWorkbook_EmptyHeadersGetPlaceholders(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause", "", "content"},
			{"7", "stray", "x"},
		},
	}, []string{"findings"})

	findings, _, err := ParseWorkbook(buf)

	require.NoError(t, err)
	assert.Equal(t, []string{"clause", "Unnamed: 1", "content"}, findings.Columns)
	assert.Equal(t, "stray", findings.Rows[0]["Unnamed: 1"])
}

func TestParseWorkbook_BlankRowsSkipped(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause", "content"},
			{"", ""},
			{"7", "  padded  "},
			{"  ", ""},
		},
	}, []string{"findings"})

	findings, _, err := ParseWorkbook(buf)

	require.NoError(t, err)
	require.Equal(t, 1, findings.Len())
	assert.Equal(t, "padded", findings.Rows[0]["content"], "cells are trimmed")
}

func TestParseWorkbook_ShortRowsPadded(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause", "subclause", "content"},
			{"7"},
		},
	}, []string{"findings"})

	findings, _, err := ParseWorkbook(buf)

	require.NoError(t, err)
	require.Equal(t, 1, findings.Len())
	assert.Equal(t, "", findings.Rows[0]["content"])
}

func TestParseWorkbook_EmptyFindingsSheet(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{"findings": nil}, []string{"findings"})

	_, _, err := ParseWorkbook(buf)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestParseWorkbook_UnreadableStandardsIgnored(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]string{
		"findings": {
			{"clause"},
			{"7"},
		},
		"standards": nil, // second sheet exists but has no header row
	}, []string{"findings", "standards"})

	findings, standards, err := ParseWorkbook(buf)

	require.NoError(t, err)
	assert.Equal(t, 1, findings.Len())
	assert.Nil(t, standards)
}

func TestParseWorkbook_NotAWorkbook(t *testing.T) {
	_, _, err := ParseWorkbook(strings.NewReader("definitely not xlsx"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")
}
