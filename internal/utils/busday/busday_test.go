package busday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vorsorgeapp/pension_backend/internal/utils/busday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	stamped := time.Date(2024, time.January, 15, 23, 45, 12, 999, loc)
	assert.Equal(t, date(2024, time.January, 15), busday.DateOnly(stamped))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, busday.IsWeekend(date(2024, time.January, 12))) // Friday
	assert.True(t, busday.IsWeekend(date(2024, time.January, 13)))  // Saturday
	assert.True(t, busday.IsWeekend(date(2024, time.January, 14)))  // Sunday
	assert.False(t, busday.IsWeekend(date(2024, time.January, 15))) // Monday
}

func TestPrevBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"tuesday yields monday", date(2024, time.January, 16), date(2024, time.January, 15)},
		{"monday skips the weekend", date(2024, time.January, 15), date(2024, time.January, 12)},
		{"sunday yields friday", date(2024, time.January, 14), date(2024, time.January, 12)},
		{"saturday yields friday", date(2024, time.January, 13), date(2024, time.January, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, busday.PrevBusinessDay(tt.in))
		})
	}
}

func TestNextBusinessDay(t *testing.T) {
	// A business day maps to itself; weekend days roll forward to Monday.
	assert.Equal(t, date(2024, time.January, 12), busday.NextBusinessDay(date(2024, time.January, 12)))
	assert.Equal(t, date(2024, time.January, 15), busday.NextBusinessDay(date(2024, time.January, 13)))
	assert.Equal(t, date(2024, time.January, 15), busday.NextBusinessDay(date(2024, time.January, 14)))
}

func TestBusinessDaysBetween(t *testing.T) {
	t.Run("spanning a weekend", func(t *testing.T) {
		got := busday.BusinessDaysBetween(date(2024, time.January, 11), date(2024, time.January, 16))
		want := []time.Time{
			date(2024, time.January, 11),
			date(2024, time.January, 12),
			date(2024, time.January, 15),
			date(2024, time.January, 16),
		}
		assert.Equal(t, want, got)
	})

	t.Run("weekend only range is empty", func(t *testing.T) {
		assert.Empty(t, busday.BusinessDaysBetween(date(2024, time.January, 13), date(2024, time.January, 14)))
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		assert.Empty(t, busday.BusinessDaysBetween(date(2024, time.January, 16), date(2024, time.January, 11)))
	})

	t.Run("single business day", func(t *testing.T) {
		got := busday.BusinessDaysBetween(date(2024, time.January, 15), date(2024, time.January, 15))
		assert.Equal(t, []time.Time{date(2024, time.January, 15)}, got)
	})
}

func TestDaysApart(t *testing.T) {
	assert.Equal(t, 0, busday.DaysApart(date(2024, time.January, 15), date(2024, time.January, 15)))
	assert.Equal(t, 3, busday.DaysApart(date(2024, time.January, 12), date(2024, time.January, 15)))
	assert.Equal(t, -3, busday.DaysApart(date(2024, time.January, 15), date(2024, time.January, 12)))
}
