package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

func TestCashFlowSeriesForwardFill(t *testing.T) {
	now := time.Date(2024, 6, 20, 8, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		expense("3", "A", "200", day(4, 3)),
		income("1", "S", "1000", day(1, 15)),
		income("2", "S", "500", day(2, 1)),
		expense("4", "A", "50", day(6, 1)),
	}

	points := CashFlowSeries(txns, now)

	require.Len(t, points, SeriesMonths)
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, months(points))
	assert.Equal(t, []string{"1000", "1500", "1500", "1300", "1300", "1250"}, values(points))
}

func TestCashFlowSeriesStartsAtZero(t *testing.T) {
	now := time.Date(2024, 6, 20, 8, 0, 0, 0, time.Local)
	txns := []model.Transaction{income("1", "S", "300", day(5, 2))}

	assert.Equal(t, []string{"0", "0", "0", "0", "300", "300"}, values(CashFlowSeries(txns, now)))
}

func TestCashFlowSeriesEmpty(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)

	points := CashFlowSeries(nil, now)
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, months(points))
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "0"}, values(points))
}

func TestCashFlowSeriesFillRestartsInsideWindow(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		income("1", "S", "700", day(1, 10)),
		expense("2", "A", "100", day(5, 10)),
	}

	// January's running total feeds May's value but is not carried into
	// April, which precedes any plotted month with data.
	assert.Equal(t, []string{"0", "600", "600", "600", "600", "600"}, values(CashFlowSeries(txns, now)))
}

func TestCashFlowSeriesMonthNameCollision(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	lastYear := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		income("1", "S", "100", lastYear),
		income("2", "S", "50", day(1, 5)),
	}

	points := CashFlowSeries(txns, now)
	// March 2023 lands on the "Mar" key and is plotted as this March.
	assert.Equal(t, "Oct", points[0].Month)
	assert.Equal(t, []string{"0", "0", "0", "150", "150", "100"}, values(points))
}

func TestCashFlowSeriesUsesNowLocation(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, eastern)
	// Late evening of Feb 29 in now's zone.
	stamped := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	txns := []model.Transaction{expense("1", "A", "100", stamped)}

	points := CashFlowSeries(txns, now)
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, months(points))
	assert.Equal(t, []string{"0", "0", "0", "0", "-100", "-100"}, values(points))
}

func months(points []MonthPoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Month)
	}
	return out
}

func values(points []MonthPoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Value.String())
	}
	return out
}
