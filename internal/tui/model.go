// Package tui is the interactive cash-flow dashboard.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/report"
	"github.com/Veraticus/cashflow-journal/internal/tui/components"
	"github.com/Veraticus/cashflow-journal/internal/tui/themes"
)

// Model holds the main TUI state.
type Model struct {
	journal    Journal
	lastError  error
	snapshot   *model.Snapshot
	theme      themes.Theme
	summary    report.Summary
	status     string
	period     period.Period
	history    components.HistoryModel
	statsPanel components.StatsPanelModel
	chart      components.ChartModel
	help       help.Model
	keymap     KeyMap
	config     Config
	width      int
	height     int
	showHelp   bool
	quitting   bool
	ready      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	return Model{
		journal:  cfg.Journal,
		config:   cfg,
		period:   cfg.Period,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		theme:    themes.Light,
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.loadSummary(m.period)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case summaryLoadedMsg:
		m.handleSummaryLoaded(msg)
		return m, nil

	case themeSavedMsg:
		m.lastError = msg.err
		m.status = "Light mode"
		if msg.dark {
			m.status = "Dark mode"
		}
		if msg.err != nil {
			m.status = "Theme changed but could not be saved"
		}
		return m, m.loadSummary(m.period)
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// An open search box owns the keyboard.
	if m.history.Searching() {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Close) {
			m.showHelp = false
		} else if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.PrevPeriod):
		m.period = m.period.Prev()
		return m, m.loadSummary(m.period)

	case key.Matches(msg, m.keymap.NextPeriod):
		m.period = m.period.Next()
		return m, m.loadSummary(m.period)

	case key.Matches(msg, m.keymap.ToggleTheme):
		return m, m.saveTheme(!m.theme.Dark)

	case key.Matches(msg, m.keymap.Refresh):
		m.status = ""
		m.lastError = nil
		return m, m.loadSummary(m.period)
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) handleSummaryLoaded(msg summaryLoadedMsg) {
	m.summary = msg.summary
	m.snapshot = msg.snapshot
	m.period = msg.summary.Period
	m.theme = themes.ForMode(msg.snapshot.DarkMode)

	m.statsPanel = components.NewStatsPanelModel(m.summary, m.theme)
	m.chart = components.NewChart(m.summary.Series, m.theme)
	m.history = components.NewHistory(m.summary.History, m.snapshot.CategoryName, m.theme)
	m.handleResize()
	m.ready = true
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	if m.wide() {
		half := (m.width - 5) / 2
		m.statsPanel.SetCompact(false)
		m.statsPanel.Resize(half, 0)
		m.chart.Resize(half, 0)
	} else {
		m.statsPanel.SetCompact(m.height < 30)
		m.statsPanel.Resize(m.width-2, 0)
		m.chart.Resize(m.width-2, 0)
	}
	m.history.Resize(m.width-2, m.historyHeight())
}

func (m Model) wide() bool {
	return m.width >= 100
}

// historyHeight is what is left for the history table below the panels.
func (m Model) historyHeight() int {
	used := 24
	if m.wide() {
		used = 16
	}
	return max(4, m.height-used)
}
