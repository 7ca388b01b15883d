package payday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestIsPayday(t *testing.T) {
	s := NewSchedule(time.Time{}, 0)

	testCases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"the anchor itself", date(2026, time.January, 23), true},
		{"one period after the anchor", date(2026, time.February, 20), true},
		{"the day before a payday", date(2026, time.February, 19), false},
		{"one period before the anchor", date(2025, time.December, 26), true},
		{"many periods later", date(2026, time.November, 27), true},
		{"arbitrary non-payday", date(2026, time.June, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.IsPayday(tc.date))
		})
	}
}

func TestNextPayday(t *testing.T) {
	s := NewSchedule(time.Time{}, 0)

	testCases := []struct {
		name string
		date time.Time
		want int
	}{
		{"payday itself counts as zero", date(2026, time.January, 23), 0},
		{"the day after a payday", date(2026, time.January, 24), 27},
		{"the day before a payday", date(2026, time.February, 19), 1},
		{"before the anchor", date(2026, time.January, 10), 13},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.NextPayday(tc.date))
		})
	}
}

func TestNewScheduleDefaults(t *testing.T) {
	s := NewSchedule(time.Time{}, 0)
	assert.Equal(t, DefaultAnchor, s.Anchor)
	assert.Equal(t, DefaultEvery, s.Every)

	custom := NewSchedule(date(2026, time.March, 6), 14)
	assert.True(t, custom.IsPayday(date(2026, time.March, 20)))
	assert.False(t, custom.IsPayday(date(2026, time.March, 21)))
}
