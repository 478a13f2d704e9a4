package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

// HistoryModel is the scrollable, searchable transaction history.
type HistoryModel struct {
	theme        themes.Theme
	categoryName func(id string) string
	search       string
	transactions []model.Transaction
	filtered     []model.Transaction
	searchInput  textinput.Model
	table        table.Model
	width        int
	height       int
	searching    bool
}

// NewHistory creates a history view over transactions, which are shown in
// the order given. categoryName resolves category IDs for display.
func NewHistory(transactions []model.Transaction, categoryName func(string) string, theme themes.Theme) HistoryModel {
	t := table.New(
		table.WithColumns(historyColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search description or category..."
	searchInput.CharLimit = 50
	_ = searchInput.Cursor.SetMode(cursor.CursorStatic)

	m := HistoryModel{
		theme:        theme,
		categoryName: categoryName,
		transactions: transactions,
		filtered:     transactions,
		table:        t,
		searchInput:  searchInput,
		width:        80,
		height:       12,
	}
	m.table.SetRows(m.buildRows())
	return m
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.searching {
		return m, m.handleSearchKey(key)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "/" {
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *HistoryModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.search = m.searchInput.Value()
		m.applyFilter()
		m.searching = false
		m.searchInput.Blur()

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.search = ""
		m.applyFilter()

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}
	return nil
}

// Searching reports whether the search box has focus, in which case keys
// belong to it.
func (m HistoryModel) Searching() bool {
	return m.searching
}

// Filtered returns the transactions currently shown.
func (m HistoryModel) Filtered() []model.Transaction {
	return m.filtered
}

// View renders the history.
func (m HistoryModel) View() string {
	title := m.theme.Bold.Render("Transaction History")

	status := fmt.Sprintf("%d transactions", len(m.filtered))
	if m.search != "" {
		status += fmt.Sprintf(" | Search: %q", m.search)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.theme.Subtitle.Render(status))

	if len(m.transactions) == 0 {
		empty := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No transactions in this period.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}

	body := m.table.View()
	if m.searching {
		body = lipgloss.JoinVertical(lipgloss.Left, m.searchInput.View(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m HistoryModel) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.filtered))
	for _, t := range m.filtered {
		amount := "+" + model.FormatUSD(t.Amount)
		if t.Type == model.TypeExpense {
			amount = "-" + model.FormatUSD(t.Amount)
		}
		rows = append(rows, table.Row{
			t.Date.Local().Format("Jan 02"),
			truncate(m.categoryName(t.CategoryID), 20),
			amount,
			truncate(t.Description, 40),
		})
	}
	return rows
}

func (m *HistoryModel) applyFilter() {
	m.filtered = m.transactions
	if m.search != "" {
		needle := strings.ToLower(m.search)
		var filtered []model.Transaction
		for _, t := range m.transactions {
			if strings.Contains(strings.ToLower(t.Description), needle) ||
				strings.Contains(strings.ToLower(m.categoryName(t.CategoryID)), needle) {
				filtered = append(filtered, t)
			}
		}
		m.filtered = filtered
	}
	m.table.SetRows(m.buildRows())
	m.table.GotoTop()
}

// Resize updates the component size.
func (m *HistoryModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// title line + table header and its border
	m.table.SetHeight(max(1, height-3))
	m.table.SetColumns(historyColumns(width))
}

func historyColumns(width int) []table.Column {
	available := max(50, width-8)
	return []table.Column{
		{Title: "Date", Width: 8},
		{Title: "Category", Width: max(12, int(float64(available)*0.25))},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: max(15, available-8-12-int(float64(available)*0.25))},
	}
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
