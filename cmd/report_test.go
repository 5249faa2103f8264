package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanishkag23/xpense/internal/screen"
)

func sampleSnapshot() screen.Snapshot {
	return screen.Snapshot{
		Text: map[screen.ElementID]string{
			screen.RIncome:  "1000.50",
			screen.RExpense: "250.25",
			screen.RBalance: "750.25",
		},
		Tables: map[screen.ElementID][]screen.Row{
			screen.ReportBody: {
				{Cells: []string{"Food", "200.00"}, Weight: 1},
				{Cells: []string{"Travel, local", "50.25"}, Weight: 0.25125},
			},
		},
	}
}

func TestReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportCSV(&buf, reportFrom(sampleSnapshot())))

	want := "section,name,amount\n" +
		"total,income,1000.50\n" +
		"total,expenses,250.25\n" +
		"total,balance,750.25\n" +
		"category,Food,200.00\n" +
		"category,\"Travel, local\",50.25\n"
	assert.Equal(t, want, buf.String())
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportJSON(&buf, reportFrom(sampleSnapshot())))

	var got report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "750.25", got.Balance)
	require.Len(t, got.ByCategory, 2)
	assert.Equal(t, "Food", got.ByCategory[0].Category)
	assert.InDelta(t, 0.25125, got.ByCategory[1].Share, 1e-9)
}

func TestReportEmptyCategoriesEncodeAsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportJSON(&buf, reportFrom(screen.Snapshot{})))
	assert.Contains(t, buf.String(), `"byCategory": []`)
}
