package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/report"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

// ChartModel draws the cumulative cash-flow series as horizontal bars.
type ChartModel struct {
	theme  themes.Theme
	series []report.MonthPoint
	width  int
}

// NewChart creates a chart of series.
func NewChart(series []report.MonthPoint, theme themes.Theme) ChartModel {
	return ChartModel{theme: theme, series: series, width: 40}
}

// View renders the chart.
func (m ChartModel) View() string {
	title := m.theme.Subtitle.Render("Cash Flow Overview")
	barWidth := max(4, m.width-22)

	maxAbs := decimal.Zero
	for _, p := range m.series {
		if a := p.Value.Abs(); a.GreaterThan(maxAbs) {
			maxAbs = a
		}
	}

	lines := make([]string, 0, len(m.series))
	for _, p := range m.series {
		n := 0
		if maxAbs.IsPositive() {
			n = int(p.Value.Abs().Div(maxAbs).Mul(decimal.NewFromInt(int64(barWidth))).Round(0).IntPart())
		}
		style := m.theme.Income
		if p.Value.IsNegative() {
			style = m.theme.Expense
		}
		bar := style.Render(strings.Repeat("█", n)) + strings.Repeat(" ", barWidth-n)
		lines = append(lines, fmt.Sprintf("%s %s %s", p.Month, bar, style.Render(model.FormatUSD(p.Value))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"))
}

// Resize updates the component size.
func (m *ChartModel) Resize(width, _ int) {
	m.width = width
}
