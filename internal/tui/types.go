package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
)

// represents the current state of the TUI
type AppState int

const (
	StateLoading AppState = iota
	StateTable
	StateHelp
	StateError
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	client  *ReportClient
	spinner spinner.Model
	table   table.Model

	// current request parameters; cycled with keybindings
	sortMode       string
	excludeTopRank bool

	report *ReportPayload
	help   string
}

// sent when a report fetch completes
type ReportMsg struct {
	report *ReportPayload
}

// sent when a refresh request completes
type RefreshedMsg struct {
	rowCount int
}

// sent when a request fails
type ErrorMsg struct {
	err error
}

// mirrors the JSON shape of GET /api/v1/report
type ReportPayload struct {
	Columns     []string            `json:"columns"`
	Rows        []map[string]string `json:"rows"`
	SortedBy    string              `json:"sorted_by"`
	TotalRows   int                 `json:"total_rows"`
	GeneratedAt string              `json:"generated_at"`
}

// error body returned by the REST API
type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
