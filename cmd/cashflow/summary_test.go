package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/report"
)

func TestPercentBar(t *testing.T) {
	tests := []struct {
		pct        int
		wantFilled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{140, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := percentBar(tt.pct, 20)
		assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"), "pct %d", tt.pct)
		assert.Equal(t, 20-tt.wantFilled, strings.Count(bar, "░"), "pct %d", tt.pct)
	}
}

func TestRenderSeries(t *testing.T) {
	series := []report.MonthPoint{
		{Month: "Jan", Value: decimal.NewFromInt(500)},
		{Month: "Feb", Value: decimal.NewFromInt(-1000)},
		{Month: "Mar", Value: decimal.Zero},
	}

	lines := strings.Split(renderSeries(series, 10), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Jan"))
	assert.Equal(t, 5, strings.Count(lines[0], "█"))
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Contains(t, lines[1], "-$1,000.00")
	assert.Equal(t, 0, strings.Count(lines[2], "█"))
}

func TestChartCommand(t *testing.T) {
	env := newTestEnv(t, "memory")
	out := env.mustRun(t, "chart")

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 7, "title plus six months")
	for _, line := range lines[1:] {
		assert.Contains(t, line, "$0.00")
	}
}
