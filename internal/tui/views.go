package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	body := m.renderCompactView()
	if m.wide() {
		body = m.renderFullView()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.history.View(),
		m.renderStatusBar(),
	)
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.Title.Render("Loading Cash Flow Journal..."),
	)
}

// renderHeader renders the title and the period tabs.
func (m Model) renderHeader() string {
	title := m.theme.Title.UnsetMarginBottom().Render("💵 Cash Flow Journal")

	tabs := make([]string, 0, len(period.All))
	for _, p := range period.All {
		if p == m.period {
			tabs = append(tabs, m.theme.Selected.Render(string(p)))
		} else {
			tabs = append(tabs, m.theme.Subtitle.Padding(0, 1).Render(string(p)))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)
}

// renderFullView puts the stats and the chart side by side.
func (m Model) renderFullView() string {
	half := (m.width - 5) / 2

	left := m.theme.RoundedBox.Width(half).Render(m.statsPanel.View())
	right := m.theme.RoundedBox.Width(half).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.chart.View(), "", m.renderRecurring()))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderCompactView stacks everything for narrow terminals.
func (m Model) renderCompactView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.statsPanel.View(),
		"",
		m.chart.View(),
		"",
	)
}

// renderRecurring lists the monthly recurring expenses.
func (m Model) renderRecurring() string {
	title := m.theme.Subtitle.Render("Recurring Expenses")
	if len(m.snapshot.RecurringExpenses) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No recurring expenses."))
	}

	lines := make([]string, 0, len(m.snapshot.RecurringExpenses)+1)
	for _, r := range m.snapshot.RecurringExpenses {
		icon := "📦"
		if c, ok := m.snapshot.FindCategory(r.CategoryID); ok {
			icon = themes.GetCategoryIcon(c.Icon)
		}
		lines = append(lines, fmt.Sprintf("%s %-18s day %2d  %s",
			icon,
			m.snapshot.CategoryName(r.CategoryID),
			r.DayOfMonth,
			model.FormatUSD(r.Amount)))
	}
	lines = append(lines, m.theme.Bold.Render(fmt.Sprintf("Total: %s/mo", model.FormatUSD(m.summary.RecurringTotal))))

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Cash Flow Journal - Help")
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.RoundedBox.
			Width(min(60, max(20, m.width-4))).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				title,
				m.help.FullHelpView(m.keymap.FullHelp()),
				"",
				footer,
			)),
	)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(string(m.period))

	var center string
	switch {
	case m.lastError != nil:
		center = m.theme.StatusError.Render(m.status + ": " + m.lastError.Error())
	case m.status != "":
		center = m.theme.StatusSuccess.Render(m.status)
	}

	right := m.help.ShortHelpView(m.keymap.ShortHelp())

	spacing := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := max(1, spacing-leftPad)

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}
