package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/export"
)

func TestRenderCSV_EveryFieldQuoted(t *testing.T) {
	cols := []export.Column{
		{Key: "name", Label: "Name", Visible: true},
		{Key: "status", Label: "Status", Visible: true},
	}
	rows := []export.Row{
		{"name": "Miller Wedding", "status": "active"},
	}

	out := export.RenderCSV(cols, rows)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Name","Status"`, lines[0])
	assert.Equal(t, `"Miller Wedding","active"`, lines[1])
}

func TestRenderCSV_EscapesQuotesAndKeepsCommas(t *testing.T) {
	cols := []export.Column{
		{Key: "a", Label: "A", Visible: true},
		{Key: "b", Label: "B", Visible: true},
	}
	rows := []export.Row{
		{"a": `A, B`, "b": `He said "hi"`},
	}

	out := export.RenderCSV(cols, rows)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"A, B","He said ""hi"""`, lines[1])
}

func TestRenderCSV_SkipsHiddenColumns(t *testing.T) {
	cols := []export.Column{
		{Key: "name", Label: "Name", Visible: true},
		{Key: "notes", Label: "Notes", Visible: false},
		{Key: "status", Label: "Status", Visible: true},
	}
	rows := []export.Row{
		{"name": "n", "notes": "secret", "status": "active"},
	}

	out := export.RenderCSV(cols, rows)

	assert.NotContains(t, out, "Notes")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, `"n","active"`)
}

func TestRenderCSV_CellRendering(t *testing.T) {
	shoot := time.Date(2026, 7, 4, 15, 30, 0, 0, time.UTC)

	cols := []export.Column{
		{Key: "date", Label: "Shoot Date", Visible: true},
		{Key: "amount", Label: "Total", Visible: true},
		{Key: "missing", Label: "Missing", Visible: true},
	}
	rows := []export.Row{
		{"date": &shoot, "amount": 1250.5},
	}

	out := export.RenderCSV(cols, rows)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"2026-07-04","1250.5",""`, lines[1], "dates are date-only, absent cells render empty")
}
