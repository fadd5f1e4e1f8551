package tui

import (
	"github.com/charmbracelet/bubbles/table"
)

// column layout for the report table; the score column header follows the
// active sort mode
type displayColumn struct {
	key   string
	title string
	width int
}

var baseColumns = []displayColumn{
	{"title", "Title", 32},
	{"keyword", "Keyword", 18},
	{"sales_7d", "Sales", 10},
	{"cv", "CV", 6},
	{"page_views_7d", "PV", 8},
	{"imp", "Imp", 8},
	{"avg_position_7d", "Pos", 6},
	{"growth_rate", "Growth%", 8},
}

var scoreColumns = map[string]displayColumn{
	"rewrite_priority":   {"rewrite_priority", "Priority", 10},
	"cvr_position":       {"cvr_position_score", "CVRxPos", 10},
	"impression_revenue": {"impression_revenue_score", "ImpxRev", 12},
	"none":               {"rewrite_priority", "Priority", 10},
}

// builds a bubbles table from a fetched report payload
func buildTable(payload *ReportPayload, sortMode string, height int) table.Model {
	scoreCol, ok := scoreColumns[sortMode]
	if !ok {
		scoreCol = scoreColumns["rewrite_priority"]
	}

	layout := append(append([]displayColumn{}, baseColumns...), scoreCol)

	columns := make([]table.Column, len(layout))
	for i, col := range layout {
		columns[i] = table.Column{Title: col.title, Width: col.width}
	}

	rows := make([]table.Row, 0, len(payload.Rows))

	for _, rec := range payload.Rows {
		row := make(table.Row, len(layout))

		for i, col := range layout {
			cell := rec[col.key]

			// fall back to the url when a page has no title
			if col.key == "title" && cell == "" {
				cell = rec["url"]
			}

			row[i] = cell
		}

		rows = append(rows, row)
	}

	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(tableStyles())

	return t
}
