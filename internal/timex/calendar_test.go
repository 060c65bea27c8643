package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:15", true},
		{"23:59", true},
		{"24:00", false},
		{"25:00", false},
		{"12:60", false},
		{"9:15", false},
		{"09:5", false},
		{"0915", false},
		{"", false},
		{" 09:15", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidClock(tt.in))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-03-01"))
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-3-1"))
	assert.False(t, IsValidDate("2024-13-01"))
	assert.False(t, IsValidDate("01-03-2024"))
	assert.False(t, IsValidDate(""))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	_, _, err = ParseClock("7:45")
	require.Error(t, err)

	assert.Equal(t, "07:05", FormatClock(7, 5))
}

func TestAt(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	got, err := At("2024-03-01", "09:15", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 15, 0, 0, loc), got)

	_, err = At("2024-03-01", "9:15", loc)
	require.Error(t, err)
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "Friday, March 1, 2024", FormatDisplayDate("2024-03-01"))
	assert.Equal(t, "garbage", FormatDisplayDate("garbage"))
	assert.Equal(t, "09:00 – 09:15", FormatTimeRange("09:00", "09:15"))
}

func TestMonthGrid_SundayStart(t *testing.T) {
	// March 2024 starts on a Friday.
	grid := MonthGrid(2024, time.March, time.Sunday)

	assert.Equal(t, "2024-02-25", FormatDate(grid[0][0]))
	assert.Equal(t, "2024-03-01", FormatDate(grid[0][5]))
	assert.Equal(t, "2024-04-06", FormatDate(grid[5][6]))

	for w := range grid {
		assert.Equal(t, time.Sunday, grid[w][0].Weekday())
	}
}

func TestMonthGrid_MondayStart(t *testing.T) {
	// April 2024 starts on a Monday, so the first cell is the 1st.
	grid := MonthGrid(2024, time.April, time.Monday)

	assert.Equal(t, "2024-04-01", FormatDate(grid[0][0]))
	assert.Equal(t, time.Monday, grid[3][0].Weekday())
}
