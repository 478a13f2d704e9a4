package components

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/report"
	tuitest "github.com/Veraticus/cashflow-journal/internal/tui/testing"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

func TestChartView(t *testing.T) {
	tests := []struct {
		name     string
		series   []report.MonthPoint
		contains []string
		bars     map[string]int
	}{
		{
			name: "bars scale to the largest value",
			series: []report.MonthPoint{
				{Month: "Jan", Value: decimal.NewFromInt(100)},
				{Month: "Feb", Value: decimal.NewFromInt(-50)},
				{Month: "Mar", Value: decimal.NewFromInt(200)},
			},
			contains: []string{"Cash Flow Overview", "$100.00", "-$50.00", "$200.00"},
			bars:     map[string]int{"Jan": 9, "Feb": 5, "Mar": 18},
		},
		{
			name: "all zero draws no bars",
			series: []report.MonthPoint{
				{Month: "Jan", Value: decimal.Zero},
				{Month: "Feb", Value: decimal.Zero},
			},
			contains: []string{"$0.00"},
			bars:     map[string]int{"Jan": 0, "Feb": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChart(tt.series, themes.Dark)
			c.Resize(40, 0) // 18 cells of bar
			out := tuitest.StripANSI(c.View())

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, line := range strings.Split(out, "\n") {
				for month, n := range tt.bars {
					if strings.HasPrefix(line, month+" ") {
						assert.Equal(t, n, strings.Count(line, "█"), "bar for %s", month)
					}
				}
			}
		})
	}
}

func TestStatsPanelView(t *testing.T) {
	groceries := model.Category{ID: "cat-exp-2", Name: "Groceries", Icon: "shopping-cart", Type: model.TypeExpense}
	rent := model.Category{ID: "cat-exp-1", Name: "Rent", Icon: "home", Type: model.TypeExpense}

	summary := report.Summary{
		Period: period.Month,
		Totals: report.Totals{
			Income:  decimal.NewFromInt(3000),
			Expense: decimal.NewFromInt(1500),
			Net:     decimal.NewFromInt(1500),
		},
		RecurringTotal: decimal.NewFromInt(1200),
		TopSpending: []report.CategorySpending{
			{Category: rent, Amount: decimal.NewFromInt(1200), Percent: 80},
			{Category: groceries, Amount: decimal.NewFromInt(300), Percent: 20},
		},
	}

	t.Run("full", func(t *testing.T) {
		m := NewStatsPanelModel(summary, themes.Light)
		m.Resize(60, 0)
		out := tuitest.StripANSI(m.View())

		assert.Contains(t, out, "Net Cash Flow (Month)")
		assert.Contains(t, out, "+$3,000.00")
		assert.Contains(t, out, "-$1,500.00")
		assert.Contains(t, out, "$1,200.00/mo")
		assert.True(t, tuitest.ContainsInOrder(out, "Top Spending", "Rent", "80%", "Groceries", "20%"))
		assert.Contains(t, out, "🏠")
	})

	t.Run("compact", func(t *testing.T) {
		m := NewStatsPanelModel(summary, themes.Light)
		m.SetCompact(true)
		out := tuitest.StripANSI(m.View())

		assert.Contains(t, out, "Net $1,500.00 | In $3,000.00 | Out $1,500.00")
		assert.NotContains(t, out, "Top Spending")
	})

	t.Run("no spending", func(t *testing.T) {
		m := NewStatsPanelModel(report.Summary{Period: period.Week}, themes.Light)
		assert.Contains(t, tuitest.StripANSI(m.View()), "No spending yet.")
	})
}

func TestHistory(t *testing.T) {
	at := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		{ID: "t2", CategoryID: "cat-exp-2", Type: model.TypeExpense, Amount: decimal.NewFromInt(120), Description: "Weekly shop", Date: at},
		{ID: "t1", CategoryID: "cat-inc-1", Type: model.TypeIncome, Amount: decimal.NewFromInt(3000), Description: "Paycheck", Date: at.AddDate(0, 0, -9)},
	}
	names := map[string]string{"cat-exp-2": "Groceries", "cat-inc-1": "Salary"}
	categoryName := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return model.UncategorizedName
	}

	m := NewHistory(txns, categoryName, themes.Light)
	m.Resize(100, 10)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "2 transactions")
	assert.True(t, tuitest.ContainsInOrder(out, "Groceries", "-$120.00", "Salary", "+$3,000.00"))

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "by description", search: "pay", want: []string{"t1"}},
		{name: "by category name", search: "GROC", want: []string{"t2"}},
		{name: "no match", search: "rent", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := m.Update(tuitest.KeyPress("/"))
			require.True(t, h.Searching())
			for _, r := range tt.search {
				h, _ = h.Update(tuitest.KeyPress(string(r)))
			}
			h, _ = h.Update(tuitest.KeyEnter())

			var ids []string
			for _, txn := range h.Filtered() {
				ids = append(ids, txn.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Contains(t, tuitest.StripANSI(h.View()), "Search: \""+tt.search+"\"")
		})
	}

	t.Run("empty history", func(t *testing.T) {
		empty := NewHistory(nil, categoryName, themes.Dark)
		assert.Contains(t, tuitest.StripANSI(empty.View()), "No transactions in this period.")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Dinner ...", truncate("Dinner with friends", 10))
	assert.Equal(t, "Café c...", truncate("Café con leche", 9))
}
