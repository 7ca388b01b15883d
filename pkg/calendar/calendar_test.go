package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yeargrid/yeargrid/internal/utils"
)

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2024, true},
		{1900, false},
		{2023, false},
		{2026, false},
		{2400, true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsLeapYear(tc.year), "year %d", tc.year)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2023))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.January))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 365, DayOfYear(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 366, DayOfYear(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
	// Midday anchoring must not shift the ordinal.
	assert.Equal(t, 60, DayOfYear(time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 61, DayOfYear(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)))
}

func TestDayOfYearRoundTripsWithDateFromDayIndex(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for idx := 0; idx < DaysInYear(year); idx++ {
			date := DateFromDayIndex(year, idx)
			assert.Equal(t, idx, DayOfYear(date)-1, "year %d index %d", year, idx)
		}
	}
}

func TestWeekNumber(t *testing.T) {
	testCases := []struct {
		name string
		date time.Time
		want int
	}{
		{"Monday Jan 1 2024 starts week 1", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{"Sunday Dec 31 2023 belongs to week 52", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 52},
		{"mid-year date", time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), 27},
		{"Jan 1 2027 (a Friday) is still week 53 of 2026", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), 53},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekNumber(tc.date))
		})
	}
}

func TestLastSundayOfMonth(t *testing.T) {
	assert.Equal(t, 29, LastSundayOfMonth(2026, time.March))
	assert.Equal(t, 25, LastSundayOfMonth(2026, time.October))
	assert.Equal(t, 31, LastSundayOfMonth(2024, time.March))
	assert.Equal(t, 27, LastSundayOfMonth(2024, time.October))
}

func TestNowInCET(t *testing.T) {
	testCases := []struct {
		name       string
		utcNow     time.Time
		wantOffset time.Duration
	}{
		{
			name:       "winter is UTC+1",
			utcNow:     time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC),
			wantOffset: time.Hour,
		},
		{
			name:       "summer is UTC+2",
			utcNow:     time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC),
			wantOffset: 2 * time.Hour,
		},
		{
			name:       "first instant of CEST",
			utcNow:     time.Date(2026, time.March, 29, 1, 0, 0, 0, time.UTC),
			wantOffset: 2 * time.Hour,
		},
		{
			name:       "instant before CEST starts",
			utcNow:     time.Date(2026, time.March, 29, 0, 59, 59, 0, time.UTC),
			wantOffset: time.Hour,
		},
		{
			name:       "first instant after CEST ends",
			utcNow:     time.Date(2026, time.October, 25, 1, 0, 0, 0, time.UTC),
			wantOffset: time.Hour,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock := &utils.MockClock{FixedNow: tc.utcNow}
			got := NowInCET(clock)
			assert.Equal(t, tc.utcNow.Add(tc.wantOffset), got)
		})
	}
}

func TestParseDateOrNow(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	clock := &utils.MockClock{FixedNow: now}
	fallback := NowInCET(clock)

	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"valid date anchored at noon UTC", "2026-08-30", time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)},
		{"empty input falls back to now", "", fallback},
		{"malformed input falls back to now", "30/08/2026", fallback},
		{"partial input falls back to now", "2026-08", fallback},
		{"month out of range falls back to now", "2026-13-01", fallback},
		{"day out of range falls back to now", "2026-01-32", fallback},
		{"zero month falls back to now", "2026-00-10", fallback},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDateOrNow(tc.input, clock))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 600, Clamp(100, 600, 3000))
	assert.Equal(t, 3000, Clamp(9000, 600, 3000))
	assert.Equal(t, 1284, Clamp(1284, 600, 3000))
}
