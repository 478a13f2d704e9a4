// Package period narrows transactions to a time window anchored at "now".
package period

import (
	"strings"
	"time"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

// Period names a reporting window.
type Period string

// Windows, smallest first.
const (
	Week     Period = "Week"
	Month    Period = "Month"
	Quarter  Period = "Quarter"
	Year     Period = "Year"
	Lifetime Period = "Lifetime"
)

// All lists every period in display order.
var All = []Period{Week, Month, Quarter, Year, Lifetime}

// Parse accepts a period name in any case.
func Parse(s string) (Period, error) {
	for _, p := range All {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", common.Validationf("unknown period %q (want week, month, quarter, year or lifetime)", s)
}

// Next returns the period after p, wrapping around.
func (p Period) Next() Period {
	return All[(p.index()+1)%len(All)]
}

// Prev returns the period before p, wrapping around.
func (p Period) Prev() Period {
	return All[(p.index()+len(All)-1)%len(All)]
}

func (p Period) index() int {
	for i, q := range All {
		if q == p {
			return i
		}
	}
	return 0
}

// Boundary returns the inclusive start of p relative to now, at midnight in
// now's location. ok is false for Lifetime, which has no lower bound.
func Boundary(p Period, now time.Time) (start time.Time, ok bool) {
	y, m, d := now.Date()
	loc := now.Location()

	switch p {
	case Week:
		return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc), true
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case Quarter:
		first := time.Month((int(m)-1)/3*3 + 1)
		return time.Date(y, first, 1, 0, 0, 0, 0, loc), true
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, false
	}
}

// Includes reports whether a transaction dated at falls inside p.
func Includes(p Period, now, at time.Time) bool {
	start, ok := Boundary(p, now)
	return !ok || !at.Before(start)
}

// Select returns the transactions dated on or after p's boundary, in their
// original order.
func Select(transactions []model.Transaction, p Period, now time.Time) []model.Transaction {
	start, ok := Boundary(p, now)
	if !ok {
		return append([]model.Transaction(nil), transactions...)
	}

	selected := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(start) {
			selected = append(selected, t)
		}
	}
	return selected
}
