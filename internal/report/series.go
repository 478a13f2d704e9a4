package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

// SeriesMonths is the number of trailing months in the cash-flow chart.
const SeriesMonths = 6

// MonthPoint is one bar of the cash-flow chart.
type MonthPoint struct {
	Month string // short English month name, e.g. "Mar"
	Value decimal.Decimal
}

// MonthLabel returns the chart key for t.
func MonthLabel(t time.Time) string {
	return t.Month().String()[:3]
}

// CashFlowSeries walks all transactions in date order accumulating the
// signed running total, keyed by month name only. Months from different
// years share a key and the later one wins. The result covers the
// SeriesMonths months ending at now's month; a month without transactions
// repeats the previous value, starting from zero. Months are calendar
// months in now's location, as in the period filter.
func CashFlowSeries(transactions []model.Transaction, now time.Time) []MonthPoint {
	sorted := append([]model.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cumulative := decimal.Zero
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range sorted {
		cumulative = cumulative.Add(t.Signed())
		byMonth[MonthLabel(t.Date.In(now.Location()))] = cumulative
	}

	points := make([]MonthPoint, 0, SeriesMonths)
	last := decimal.Zero
	for i := SeriesMonths - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		label := MonthLabel(first)
		if v, ok := byMonth[label]; ok {
			last = v
		}
		points = append(points, MonthPoint{Month: label, Value: last})
	}
	return points
}
