package tui

import (
	"context"

	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/period"
	"github.com/Veraticus/cashflow-journal/internal/report"
)

// Journal is what the dashboard reads and changes. *journal.Journal
// satisfies it.
type Journal interface {
	SummaryWithSnapshot(p period.Period) (report.Summary, *model.Snapshot)
	SetDarkMode(ctx context.Context, dark bool)
	PersistErr() error
}

// Config holds TUI configuration.
type Config struct {
	Journal  Journal
	Period   period.Period
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Period: period.Month,
		Width:  80,
		Height: 24,
	}
}

// WithJournal sets the journal the dashboard shows.
func WithJournal(j Journal) Option {
	return func(c *Config) {
		c.Journal = j
	}
}

// WithPeriod sets the period selected on start.
func WithPeriod(p period.Period) Option {
	return func(c *Config) {
		c.Period = p
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
