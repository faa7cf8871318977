package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Valid date", "2024-03-05", true},
		{"Valid end of month", "2024-02-29", true},
		{"Empty string", "", false},
		{"Month out of range", "2024-13-40", false},
		{"Day out of range", "2024-02-30", false},
		{"Not zero padded", "2024-3-5", false},
		{"Garbage", "next tuesday", false},
		{"Timestamp suffix rejected", "2024-03-05T00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDateOnly(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.input, FormatDateOnly(d), "format should invert parse")
			}
		})
	}
}

func TestParseDateOnlyLocalMidnight(t *testing.T) {
	d, ok := ParseDateOnly("2024-03-05")
	require.True(t, ok)

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour(), "should be local midnight, not UTC-shifted")
	assert.Equal(t, time.Local, d.Location())
}

func TestDaysUntil(t *testing.T) {
	ref := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.Local) // mid-day reference

	tests := []struct {
		name     string
		deadline string
		days     int
		ok       bool
	}{
		{"Future deadline", "2024-03-17", 7, true},
		{"Tomorrow", "2024-03-11", 1, true},
		{"Same day", "2024-03-10", 0, true},
		{"Yesterday", "2024-03-09", -1, true},
		{"A week past", "2024-03-03", -7, true},
		{"Across month boundary", "2024-04-09", 30, true},
		{"Unparseable", "2024-13-40", 0, false},
		{"Empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntil(tt.deadline, ref)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestDaysUntilDecreasesByOnePerDay(t *testing.T) {
	const deadline = "2024-06-15"
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)

	prev, ok := DaysUntil(deadline, ref)
	require.True(t, ok)

	for i := 1; i <= 30; i++ {
		cur, ok := DaysUntil(deadline, ref.AddDate(0, 0, i))
		require.True(t, ok)
		assert.Equal(t, prev-1, cur, "advancing the reference one day must shift the count by exactly one")
		prev = cur
	}
}

func TestStartOfToday(t *testing.T) {
	today := StartOfToday()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())

	now := time.Now()
	assert.Equal(t, now.Year(), today.Year())
	assert.Equal(t, now.YearDay(), today.YearDay())
}
