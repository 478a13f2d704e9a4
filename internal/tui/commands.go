package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cashflow-journal/internal/period"
)

// loadSummary computes the summary for p.
func (m Model) loadSummary(p period.Period) tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		summary, snap := j.SummaryWithSnapshot(p)
		return summaryLoadedMsg{summary: summary, snapshot: snap}
	}
}

// saveTheme switches the theme preference and persists it.
func (m Model) saveTheme(dark bool) tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		j.SetDarkMode(ctx, dark)
		return themeSavedMsg{dark: dark, err: j.PersistErr()}
	}
}
