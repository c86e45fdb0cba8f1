package festival

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestMonthIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Jan", 0, true},
		{"oct", 9, true},
		{"Oct-Nov", 9, true}, // range uses the start month
		{"December", 11, true},
		{" Sep ", 8, true},
		{"", 0, false},
		{"Foo", 0, false},
	}
	for _, c := range cases {
		got, ok := MonthIndex(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("MonthIndex(%q) = (%d, %v); want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFindNearestWrapsAcrossYearEnd(t *testing.T) {
	catalog := []Record{{Name: "Kite Day", Month: "Jan"}}

	nearest := FindNearest(catalog, date(2026, time.December, 10))
	assert.NotNil(t, nearest)
	assert.Equal(t, 1, nearest.MonthsAway)
	assert.True(t, nearest.IsImminent)
}

func TestFindNearestCurrentMonthPastThresholdRollsToNextYear(t *testing.T) {
	catalog := []Record{{Name: "Lights Fest", Month: "Oct"}}

	// Day 25 is past the day-20 cutoff: the festival this month is over.
	nearest := FindNearest(catalog, date(2026, time.October, 25))
	assert.NotNil(t, nearest)
	assert.Equal(t, 12, nearest.MonthsAway)
	assert.False(t, nearest.IsImminent)
}

func TestFindNearestCurrentMonthBeforeThreshold(t *testing.T) {
	catalog := []Record{{Name: "Lights Fest", Month: "Oct"}}

	nearest := FindNearest(catalog, date(2026, time.October, 10))
	assert.NotNil(t, nearest)
	assert.Equal(t, 0, nearest.MonthsAway)
	assert.True(t, nearest.IsImminent)
}

func TestFindNearestTieBreaksByCatalogOrder(t *testing.T) {
	catalog := []Record{
		{Name: "First Fest", Month: "Nov"},
		{Name: "Second Fest", Month: "Nov"},
	}

	nearest := FindNearest(catalog, date(2026, time.September, 1))
	assert.NotNil(t, nearest)
	assert.Equal(t, "First Fest", nearest.Festival.Name)
	assert.Equal(t, 2, nearest.MonthsAway)
}

func TestFindNearestSkipsUnparseableMonths(t *testing.T) {
	catalog := []Record{
		{Name: "Broken", Month: "???"},
		{Name: "Good", Month: "Dec"},
	}

	nearest := FindNearest(catalog, date(2026, time.November, 1))
	assert.NotNil(t, nearest)
	assert.Equal(t, "Good", nearest.Festival.Name)
}

func TestFindNearestEmptyCatalogReturnsNil(t *testing.T) {
	assert.Nil(t, FindNearest(nil, date(2026, time.June, 1)))
}
