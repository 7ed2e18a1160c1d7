package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/export"
)

func TestSortState_ToggleCycle(t *testing.T) {
	s := export.NewSortState("main_shoot_date", export.SortAsc)

	s.Toggle("name")
	assert.Equal(t, "name", s.Column)
	assert.Equal(t, export.SortAsc, s.Direction, "fresh column starts ascending")

	s.Toggle("name")
	assert.Equal(t, export.SortDesc, s.Direction)

	s.Toggle("name")
	assert.Equal(t, "main_shoot_date", s.Column, "third click reverts to the default sort")
	assert.Equal(t, export.SortAsc, s.Direction)
}

func TestSortState_SwitchingColumnResetsDirection(t *testing.T) {
	s := export.NewSortState("main_shoot_date", export.SortAsc)

	s.Toggle("total_amount")
	s.Toggle("total_amount") // now desc
	s.Toggle("name")

	assert.Equal(t, "name", s.Column)
	assert.Equal(t, export.SortAsc, s.Direction)
}

func TestApplySort_Strings(t *testing.T) {
	rows := []export.Row{
		{"name": "Charlie"},
		{"name": "Alice"},
		{"name": "Bob"},
	}

	s := export.NewSortState("name", export.SortAsc)
	export.ApplySort(rows, s)
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Equal(t, "Charlie", rows[2]["name"])

	s.Direction = export.SortDesc
	export.ApplySort(rows, s)
	assert.Equal(t, "Charlie", rows[0]["name"])
}

func TestApplySort_NilDatesSortFirstAscending(t *testing.T) {
	early := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	rows := []export.Row{
		{"name": "b", "main_shoot_date": &late},
		{"name": "c", "main_shoot_date": (*time.Time)(nil)},
		{"name": "a", "main_shoot_date": &early},
	}

	export.ApplySort(rows, export.NewSortState("main_shoot_date", export.SortAsc))

	require.Len(t, rows, 3)
	assert.Equal(t, "c", rows[0]["name"], "unset dates come first")
	assert.Equal(t, "a", rows[1]["name"])
	assert.Equal(t, "b", rows[2]["name"])
}

func TestApplySort_IsStable(t *testing.T) {
	rows := []export.Row{
		{"name": "first", "status": "active"},
		{"name": "second", "status": "active"},
		{"name": "third", "status": "active"},
	}

	export.ApplySort(rows, export.NewSortState("status", export.SortAsc))

	assert.Equal(t, "first", rows[0]["name"])
	assert.Equal(t, "second", rows[1]["name"])
	assert.Equal(t, "third", rows[2]["name"])
}
