package main

import (
	"fmt"
	"os"

	"codeberg.org/seoradar/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

func main() {
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "seoradar tui requires an interactive terminal")
		os.Exit(1)
	}

	app := tui.NewApp()
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running seoradar tui: %v\n", err)
		os.Exit(1)
	}
}
