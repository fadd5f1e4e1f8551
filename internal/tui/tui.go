package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// order in which 's' cycles the ranking
var sortCycle = []string{"rewrite_priority", "cvr_position", "impression_revenue"}

func NewApp() *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		state:    StateLoading,
		client:   NewReportClient(),
		spinner:  sp,
		sortMode: sortCycle[0],
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.client.FetchCmd(m.sortMode, m.excludeTopRank),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.report != nil {
			m.table = buildTable(m.report, m.sortMode, m.tableHeight())
		}

		m.help = "" // re-render on next toggle at the new width

		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case ReportMsg:
		m.state = StateTable
		m.report = msg.report
		m.table = buildTable(msg.report, m.sortMode, m.tableHeight())

		return m, nil

	case RefreshedMsg:
		// dataset replaced upstream, pull the fresh table
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, m.client.FetchCmd(m.sortMode, m.excludeTopRank))

	case ErrorMsg:
		m.state = StateError
		m.err = msg.err

		return m, nil
	}

	if m.state == StateTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		if m.state == StateHelp {
			m.state = StateTable
			return m, nil
		}

		if m.help == "" {
			m.help = renderHelp(m.width)
		}

		m.state = StateHelp

		return m, nil

	case "esc":
		if m.state == StateHelp || m.state == StateError {
			m.state = StateTable
		}

		return m, nil

	case "s":
		if m.state != StateTable {
			return m, nil
		}

		m.sortMode = nextSortMode(m.sortMode)
		m.state = StateLoading

		return m, tea.Batch(m.spinner.Tick, m.client.FetchCmd(m.sortMode, m.excludeTopRank))

	case "t":
		if m.state != StateTable {
			return m, nil
		}

		m.excludeTopRank = !m.excludeTopRank
		m.state = StateLoading

		return m, tea.Batch(m.spinner.Tick, m.client.FetchCmd(m.sortMode, m.excludeTopRank))

	case "r":
		if m.state != StateTable {
			return m, nil
		}

		m.state = StateLoading

		return m, tea.Batch(m.spinner.Tick, m.client.RefreshCmd())
	}

	if m.state == StateTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case StateLoading:
		return fmt.Sprintf("\n  %s fetching report...\n", m.spinner.View())

	case StateError:
		return errorView(m.err)

	case StateHelp:
		return m.help

	case StateTable:
		return m.tableView()

	default:
		return ""
	}
}

func (m *Model) tableView() string {
	header := titleStyle.Render("SEO Radar — rewrite priority report")

	status := statusStyle.Render(fmt.Sprintf(
		"sort: %s  |  exclude top-3: %v  |  %d rows",
		m.sortMode, m.excludeTopRank, m.report.TotalRows,
	))

	hints := keyHintStyle.Render("s: sort  t: top-3 filter  r: refresh  ?: help  q: quit")

	return header + "\n" + status + "\n" + m.table.View() + "\n\n" + hints + "\n"
}

func (m *Model) tableHeight() int {
	// leave room for header, status line and key hints
	return m.height - 8
}

func errorView(err error) string {
	return errorStyle.Render(fmt.Sprintf("error: %v", err)) +
		"\n" + keyHintStyle.Render("esc: back  q: quit") + "\n"
}

func nextSortMode(current string) string {
	for i, mode := range sortCycle {
		if mode == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}

	return sortCycle[0]
}
