package tui

import (
	"github.com/Veraticus/cashflow-journal/internal/model"
	"github.com/Veraticus/cashflow-journal/internal/report"
)

// summaryLoadedMsg carries a fresh summary and the snapshot it came from.
type summaryLoadedMsg struct {
	snapshot *model.Snapshot
	summary  report.Summary
}

// themeSavedMsg reports the outcome of a theme change. The change is in
// effect even when err is set; it just was not persisted.
type themeSavedMsg struct {
	err  error
	dark bool
}
