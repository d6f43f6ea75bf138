package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildYear(t *testing.T) {
	cols := Build(ViewYear, date(2025, time.June, 15))

	assert.Equal(t, 365, cols.Len())
	assert.Equal(t, date(2025, time.January, 1).Day(), cols.Start().Day())
	assert.Equal(t, time.January, cols.Start().Month())
	assert.Equal(t, time.December, cols.End().Month())
	assert.Equal(t, 31, cols.End().Day())
}

func TestBuildYearLeap(t *testing.T) {
	cols := Build(ViewYear, date(2024, time.March, 1))
	assert.Equal(t, 366, cols.Len())
}

func TestBuildThreeMonthWindow(t *testing.T) {
	// Focus June 2025: window is May 1 through July 31.
	cols := Build(ViewThree, date(2025, time.June, 15))

	assert.Equal(t, time.May, cols.Start().Month())
	assert.Equal(t, 1, cols.Start().Day())
	assert.Equal(t, time.July, cols.End().Month())
	assert.Equal(t, 31, cols.End().Day())
	assert.Equal(t, 31+30+31, cols.Len())
}

func TestBuildThreeAcrossYearBoundary(t *testing.T) {
	// Focus January: previous month is December of the prior year.
	cols := Build(ViewThree, date(2025, time.January, 10))

	assert.Equal(t, 2024, cols.Start().Year())
	assert.Equal(t, time.December, cols.Start().Month())
	assert.Equal(t, time.February, cols.End().Month())
	assert.Equal(t, 28, cols.End().Day())
}

func TestBuildMonth(t *testing.T) {
	tests := []struct {
		name  string
		focus time.Time
		days  int
	}{
		{"thirty one", date(2025, time.August, 20), 31},
		{"thirty", date(2025, time.September, 1), 30},
		{"february", date(2025, time.February, 14), 28},
		{"leap february", date(2024, time.February, 14), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := Build(ViewMonth, tt.focus)
			assert.Equal(t, tt.days, cols.Len())
			assert.Equal(t, 1, cols.Start().Day())
		})
	}
}

func TestColumnsAreConsecutiveNoons(t *testing.T) {
	cols := Build(ViewMonth, date(2025, time.March, 1))

	for i, d := range cols.Days {
		assert.Equal(t, 12, d.Hour(), "column %d should be anchored at noon", i)
		if i > 0 {
			assert.Equal(t, 1, DaysInclusive(cols.Days[i-1], d)-1)
		}
	}
}

func TestIndexLookup(t *testing.T) {
	cols := Build(ViewMonth, date(2025, time.August, 1))

	idx, ok := cols.Index(date(2025, time.August, 15))
	assert.True(t, ok)
	assert.Equal(t, 14, idx)

	_, ok = cols.Index(date(2025, time.September, 1))
	assert.False(t, ok)
}

func TestOffsetClamping(t *testing.T) {
	cols := Build(ViewMonth, date(2025, time.August, 1))

	assert.Equal(t, 0, cols.Offset(date(2025, time.July, 20)))
	assert.Equal(t, 4, cols.Offset(date(2025, time.August, 5)))
	assert.Equal(t, cols.Len()-1, cols.Offset(date(2025, time.September, 9)))
}

func TestViewModeCycle(t *testing.T) {
	assert.Equal(t, ViewThree, ViewYear.Next())
	assert.Equal(t, ViewMonth, ViewThree.Next())
	assert.Equal(t, ViewYear, ViewMonth.Next())
}

func TestDayKeyRoundTrip(t *testing.T) {
	d := date(2025, time.August, 3)
	key := DayKey(d)
	assert.Equal(t, "2025-08-03", key)

	parsed, err := ParseDayKey(key)
	assert.NoError(t, err)
	assert.Equal(t, 12, parsed.Hour())
	assert.Equal(t, key, DayKey(parsed))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2025, time.August, 3), date(2025, time.August, 3)))
	assert.Equal(t, 3, DaysInclusive(date(2025, time.August, 1), date(2025, time.August, 3)))
	// Spans the DST transition without drifting.
	assert.Equal(t, 31, DaysInclusive(date(2025, time.March, 1), date(2025, time.March, 31)))
}
