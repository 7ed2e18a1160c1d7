package export

import (
	"sort"
	"time"
)

// Column is one admin-table column: a row key plus the label that becomes
// the CSV header. Config lives only in memory / in request parameters; the
// back-office never persists a user's column layout.
type Column struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
	Width   int    `json:"width,omitempty"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the tri-state column sort: asc, then desc, then back to the
// default column and direction.
type SortState struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`

	DefaultColumn    string        `json:"-"`
	DefaultDirection SortDirection `json:"-"`
}

func NewSortState(defaultColumn string, defaultDirection SortDirection) SortState {
	return SortState{
		Column:           defaultColumn,
		Direction:        defaultDirection,
		DefaultColumn:    defaultColumn,
		DefaultDirection: defaultDirection,
	}
}

// Toggle advances the sort for the given column. A fresh column starts at
// asc; the third click on the same column reverts to the default sort.
func (s *SortState) Toggle(column string) {
	if s.Column != column {
		s.Column = column
		s.Direction = SortAsc
		return
	}

	switch s.Direction {
	case SortAsc:
		s.Direction = SortDesc
	default:
		s.Column = s.DefaultColumn
		s.Direction = s.DefaultDirection
	}
}

// Rows are the flattened view the table renders: row key -> cell value.
type Row map[string]any

// ApplySort orders rows by the sort state's column. Unknown or mixed types
// fall back to their rendered string form.
func ApplySort(rows []Row, s SortState) {
	sort.SliceStable(rows, func(i, j int) bool {
		less := cellLess(rows[i][s.Column], rows[j][s.Column])
		if s.Direction == SortDesc {
			return cellLess(rows[j][s.Column], rows[i][s.Column])
		}
		return less
	})
}

func cellLess(a, b any) bool {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case *time.Time:
		bv, ok := b.(*time.Time)
		if !ok {
			break
		}
		if av == nil {
			return bv != nil
		}
		if bv == nil {
			return false
		}
		return av.Before(*bv)
	}
	return renderCell(a) < renderCell(b)
}
