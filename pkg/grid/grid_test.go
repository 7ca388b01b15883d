package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeargrid/yeargrid/pkg/birthday"
	"github.com/yeargrid/yeargrid/pkg/holiday"
	"github.com/yeargrid/yeargrid/pkg/payday"
)

func setupService() *Service {
	return NewService(holiday.NewMalta(), payday.NewSchedule(time.Time{}, 0))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestCompute_CoversEveryDayExactlyOnce(t *testing.T) {
	service := setupService()

	for _, year := range []int{2023, 2024} {
		result := service.Compute(date(year, time.June, 15), nil)
		require.Len(t, result.Days, result.Summary.TotalDays)

		seen := make(map[int]bool, len(result.Days))
		for _, d := range result.Days {
			assert.False(t, seen[d.DayIndex], "day index %d appears twice", d.DayIndex)
			seen[d.DayIndex] = true
		}
	}
}

func TestCompute_ExactlyOneTemporalState(t *testing.T) {
	service := setupService()
	result := service.Compute(date(2026, time.June, 15), nil)

	var todays int
	for _, d := range result.Days {
		states := 0
		for _, b := range []bool{d.IsPast, d.IsToday, d.IsFuture} {
			if b {
				states++
			}
		}
		assert.Equal(t, 1, states, "day %s", d.Date)
		if d.IsToday {
			todays++
			assert.Equal(t, result.Summary.DaysElapsed-1, d.DayIndex)
		}
	}
	assert.Equal(t, 1, todays)
}

func TestCompute_Overlays(t *testing.T) {
	service := setupService()
	birthdays := []birthday.Birthday{
		{Name: "Me", Month: 12, Day: 25, Category: birthday.CategorySelf},
	}
	result := service.Compute(date(2026, time.June, 15), birthdays)

	byIndex := make(map[int]DayState, len(result.Days))
	for _, d := range result.Days {
		byIndex[d.DayIndex] = d
	}

	// Dec 25 2026: Christmas, a payday (anchor + 11 periods), and a birthday
	// all on one day; the flags are independent.
	christmas := byIndex[358]
	require.Equal(t, time.December, christmas.Date.Month())
	require.Equal(t, 25, christmas.Date.Day())
	assert.True(t, christmas.HasHoliday)
	assert.Equal(t, "Christmas Day", christmas.HolidayName)
	assert.True(t, christmas.IsPayday)
	assert.True(t, christmas.HasBirthday)
	assert.Equal(t, birthday.CategorySelf, christmas.Category)

	// Good Friday 2026 falls on Apr 3.
	goodFriday := byIndex[92]
	require.Equal(t, time.April, goodFriday.Date.Month())
	require.Equal(t, 3, goodFriday.Date.Day())
	assert.Equal(t, "Good Friday", goodFriday.HolidayName)

	ordinary := byIndex[164]
	assert.False(t, ordinary.HasHoliday)
	assert.False(t, ordinary.HasBirthday)
}

func TestCompute_SummaryAtYearEdges(t *testing.T) {
	service := setupService()

	jan1 := service.Compute(date(2026, time.January, 1), nil)
	assert.Equal(t, 1, jan1.Summary.DaysElapsed)
	assert.Equal(t, 364, jan1.Summary.DaysLeft)
	assert.Equal(t, 0, jan1.Summary.PercentDone)
	assert.Equal(t, 1, jan1.Summary.Week)

	dec31 := service.Compute(date(2026, time.December, 31), nil)
	assert.Equal(t, 365, dec31.Summary.DaysElapsed)
	assert.Equal(t, 0, dec31.Summary.DaysLeft)
	assert.Equal(t, 100, dec31.Summary.PercentDone)
}

func TestCompute_SummaryUpcoming(t *testing.T) {
	service := setupService()
	birthdays := []birthday.Birthday{
		{Name: "Alex", Month: 7, Day: 22, Category: birthday.CategoryFriend},
	}

	result := service.Compute(date(2026, time.July, 12), birthdays)
	require.NotNil(t, result.Summary.NextBirthday)
	assert.Equal(t, "Alex", result.Summary.NextBirthday.Name)
	assert.Equal(t, 10, result.Summary.NextBirthday.DaysUntil)
	// Jul 12 2026: the previous payday was Jul 10 (anchor + 6 periods).
	assert.Equal(t, 26, result.Summary.DaysToPayday)

	noBirthdays := service.Compute(date(2026, time.July, 12), nil)
	assert.Nil(t, noBirthdays.Summary.NextBirthday)
}
