package period

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

func TestBoundary(t *testing.T) {
	friday := time.Date(2024, 3, 15, 17, 45, 12, 500, time.Local)
	sunday := time.Date(2024, 3, 17, 8, 0, 0, 0, time.Local)
	november := time.Date(2024, 11, 2, 1, 0, 0, 0, time.Local)

	tests := []struct {
		now    time.Time
		want   time.Time
		name   string
		period Period
	}{
		{name: "week from friday", period: Week, now: friday, want: date(2024, 3, 10, 0)},
		{name: "week on sunday is today", period: Week, now: sunday, want: date(2024, 3, 17, 0)},
		{name: "week crossing month", period: Week, now: time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local), want: date(2024, 2, 25, 0)},
		{name: "month", period: Month, now: friday, want: date(2024, 3, 1, 0)},
		{name: "first quarter", period: Quarter, now: friday, want: date(2024, 1, 1, 0)},
		{name: "fourth quarter", period: Quarter, now: november, want: date(2024, 10, 1, 0)},
		{name: "year", period: Year, now: november, want: date(2024, 1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Boundary(tt.period, tt.now)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.Zero(t, got.Hour()+got.Minute()+got.Second()+got.Nanosecond())
		})
	}

	_, ok := Boundary(Lifetime, friday)
	assert.False(t, ok)
}

func TestSelectScenario(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		{ID: "a", Type: model.TypeExpense, Amount: decimal.NewFromInt(500), Date: date(2024, 3, 1, 0)},
		{ID: "b", Type: model.TypeExpense, Amount: decimal.NewFromInt(100), Date: date(2024, 2, 20, 0)},
	}

	month := Select(txns, Month, now)
	require.Len(t, month, 1)
	assert.Equal(t, "a", month[0].ID)

	quarter := Select(txns, Quarter, now)
	assert.Equal(t, []string{"a", "b"}, ids(quarter))

	assert.Equal(t, []string{"a", "b"}, ids(Select(txns, Lifetime, now)))
}

func TestSelectBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		{ID: "edge", Date: date(2024, 3, 1, 0)},
		{ID: "before", Date: date(2024, 3, 1, 0).Add(-time.Millisecond)},
	}

	assert.Equal(t, []string{"edge"}, ids(Select(txns, Month, now)))
}

func TestWindowsAreNested(t *testing.T) {
	nows := []time.Time{
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local),
		time.Date(2024, 1, 2, 0, 30, 0, 0, time.Local),
		time.Date(2024, 4, 1, 9, 0, 0, 0, time.Local),
		time.Date(2023, 12, 31, 23, 59, 0, 0, time.Local),
	}

	for _, now := range nows {
		weekStart, _ := Boundary(Week, now)
		monthStart, _ := Boundary(Month, now)
		weekInsideMonth := !weekStart.Before(monthStart)

		for offset := 0; offset < 400; offset++ {
			at := now.AddDate(0, 0, -offset)
			for i := 0; i < len(All)-1; i++ {
				if All[i] == Week && !weekInsideMonth {
					continue
				}
				if Includes(All[i], now, at) {
					assert.True(t, Includes(All[i+1], now, at),
						"%s included under %s but not %s (now %s)", at, All[i], All[i+1], now)
				}
			}
		}
	}
}

func TestWeekMayStartInPreviousMonth(t *testing.T) {
	monday := time.Date(2024, 4, 1, 9, 0, 0, 0, time.Local)
	sunday := date(2024, 3, 31, 10)

	assert.True(t, Includes(Week, monday, sunday))
	assert.False(t, Includes(Month, monday, sunday))
	assert.False(t, Includes(Quarter, monday, sunday))
	assert.True(t, Includes(Lifetime, monday, sunday))
}

func TestParse(t *testing.T) {
	p, err := Parse("quarter")
	require.NoError(t, err)
	assert.Equal(t, Quarter, p)

	p, err = Parse(" LIFETIME ")
	require.NoError(t, err)
	assert.Equal(t, Lifetime, p)

	_, err = Parse("fortnight")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestNextPrev(t *testing.T) {
	assert.Equal(t, Month, Week.Next())
	assert.Equal(t, Week, Lifetime.Next())
	assert.Equal(t, Lifetime, Week.Prev())
	assert.Equal(t, Quarter, Year.Prev())
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}
