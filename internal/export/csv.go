package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// RenderCSV writes the visible columns in their configured order: header row
// of labels, then one line per row with every field double-quote-escaped.
// The previous back-office quoted unconditionally, and downstream admin
// spreadsheets were built against that, so the stdlib csv writer (which only
// quotes when needed) is not used here.
func RenderCSV(columns []Column, rows []Row) string {
	visible := make([]Column, 0, len(columns))
	for _, col := range columns {
		if col.Visible {
			visible = append(visible, col)
		}
	}

	var b strings.Builder

	for i, col := range visible {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(col.Label))
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, col := range visible {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(renderCell(row[col.Key])))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func escape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func renderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(dateFormat)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(dateFormat)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
