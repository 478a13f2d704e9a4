package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/report"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

// StatsPanelModel shows the period totals and where the money went.
type StatsPanelModel struct {
	theme       themes.Theme
	summary     report.Summary
	progressBar progress.Model
	width       int
	compact     bool
}

// NewStatsPanelModel creates a stats panel for summary.
func NewStatsPanelModel(summary report.Summary, theme themes.Theme) StatsPanelModel {
	prog := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	prog.EmptyColor = string(theme.Border)
	prog.Width = 20

	return StatsPanelModel{
		theme:       theme,
		summary:     summary,
		progressBar: prog,
	}
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if m.compact {
		return m.renderCompact()
	}

	sections := []string{
		m.renderNet(),
		"",
		m.renderSpending(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m StatsPanelModel) renderCompact() string {
	t := m.summary.Totals
	return m.theme.Box.Render(fmt.Sprintf("Net %s | In %s | Out %s",
		m.money(t.Net),
		m.theme.Income.Render(model.FormatUSD(t.Income)),
		m.theme.Expense.Render(model.FormatUSD(t.Expense))))
}

func (m StatsPanelModel) renderNet() string {
	t := m.summary.Totals
	title := m.theme.Subtitle.Render(fmt.Sprintf("Net Cash Flow (%s)", m.summary.Period))
	net := m.theme.Bold.Render(m.money(t.Net))

	lines := []string{
		fmt.Sprintf("%-12s %s", "Income:", m.theme.Income.Render("+"+model.FormatUSD(t.Income))),
		fmt.Sprintf("%-12s %s", "Expenses:", m.theme.Expense.Render("-"+model.FormatUSD(t.Expense))),
		fmt.Sprintf("%-12s %s", "Recurring:", m.theme.Normal.Render(model.FormatUSD(m.summary.RecurringTotal)+"/mo")),
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, net, "", strings.Join(lines, "\n"))
}

func (m StatsPanelModel) renderSpending() string {
	title := m.theme.Subtitle.Render("Top Spending")
	if len(m.summary.TopSpending) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No spending yet."))
	}

	lines := make([]string, 0, len(m.summary.TopSpending))
	for _, s := range m.summary.TopSpending {
		lines = append(lines, fmt.Sprintf("%s %-14s %s %3d%%  %s",
			themes.GetCategoryIcon(s.Category.Icon),
			truncate(s.Category.Name, 14),
			m.progressBar.ViewAs(float64(s.Percent)/100),
			s.Percent,
			model.FormatUSD(s.Amount)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

func (m StatsPanelModel) money(d decimal.Decimal) string {
	s := model.FormatUSD(d)
	switch {
	case d.IsNegative():
		return m.theme.Expense.Render(s)
	case d.IsPositive():
		return m.theme.Income.Render(s)
	default:
		return s
	}
}

// SetCompact sets compact mode.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *StatsPanelModel) Resize(width, _ int) {
	m.width = width
	m.progressBar.Width = max(5, min(width-40, 30))
}
