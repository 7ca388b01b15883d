package birthday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"self", "family", "friend"} {
		c, err := ParseCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, Category(valid), c)
	}
	_, err := ParseCategory("enemy")
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	b := Birthday{Name: "Alex", Month: 7, Day: 22, Category: CategoryFriend}

	assert.True(t, b.Matches(date(2026, time.July, 22)))
	assert.True(t, b.Matches(date(1999, time.July, 22)), "matching is year-independent")
	assert.False(t, b.Matches(date(2026, time.July, 23)))
	assert.False(t, b.Matches(date(2026, time.August, 22)))
}

func TestMatches_ImpossibleDatesAreInert(t *testing.T) {
	feb30 := Birthday{Name: "Glitch", Month: 2, Day: 30, Category: CategoryFriend}
	month13 := Birthday{Name: "Orphan", Month: 13, Day: 5, Category: CategoryFriend}

	for year := 2023; year <= 2026; year++ {
		for d := date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
			assert.False(t, feb30.Matches(d))
			assert.False(t, month13.Matches(d))
		}
	}
}

func TestCategoryForDate_PriorityOrder(t *testing.T) {
	day := date(2026, time.March, 15)
	self := Birthday{Name: "Me", Month: 3, Day: 15, Category: CategorySelf}
	family := Birthday{Name: "Mom", Month: 3, Day: 15, Category: CategoryFamily}
	friend := Birthday{Name: "Sam", Month: 3, Day: 15, Category: CategoryFriend}

	testCases := []struct {
		name      string
		birthdays []Birthday
		want      Category
	}{
		{"self beats family and friend", []Birthday{friend, family, self}, CategorySelf},
		{"family beats friend", []Birthday{friend, family}, CategoryFamily},
		{"friend stands alone", []Birthday{friend}, CategoryFriend},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CategoryForDate(tc.birthdays, day)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := CategoryForDate([]Birthday{self, family, friend}, date(2026, time.March, 16))
	assert.False(t, ok)
}

func TestNextOccurrence_TodayWinsOutright(t *testing.T) {
	ref := date(2026, time.July, 22)
	birthdays := []Birthday{
		{Name: "Soon", Month: 7, Day: 23, Category: CategoryFriend},
		{Name: "Today", Month: 7, Day: 22, Category: CategoryFamily},
	}

	got, ok := NextOccurrence(birthdays, ref)
	require.True(t, ok)
	assert.Equal(t, "Today", got.Name)
	assert.Equal(t, 0, got.DaysUntil)
}

func TestNextOccurrence_SameYear(t *testing.T) {
	ref := date(2026, time.March, 1)
	birthdays := []Birthday{
		{Name: "Late", Month: 12, Day: 25, Category: CategoryFriend},
		{Name: "Soon", Month: 3, Day: 15, Category: CategoryFriend},
	}

	got, ok := NextOccurrence(birthdays, ref)
	require.True(t, ok)
	assert.Equal(t, "Soon", got.Name)
	assert.Equal(t, 14, got.DaysUntil)
}

func TestNextOccurrence_YearBoundaryRollover(t *testing.T) {
	// Dec 30 2023 (365-day year) to Jan 2: 1 remaining day + 2 into the
	// leap year 2024.
	ref := date(2023, time.December, 30)
	birthdays := []Birthday{{Name: "NewYear", Month: 1, Day: 2, Category: CategoryFriend}}

	got, ok := NextOccurrence(birthdays, ref)
	require.True(t, ok)
	assert.Equal(t, 3, got.DaysUntil)

	// Same distance from a leap year into a common year.
	ref = date(2024, time.December, 30)
	got, ok = NextOccurrence(birthdays, ref)
	require.True(t, ok)
	assert.Equal(t, 3, got.DaysUntil)
}

func TestNextOccurrence_TieBreaksByInputOrder(t *testing.T) {
	ref := date(2026, time.June, 1)
	first := Birthday{Name: "First", Month: 6, Day: 10, Category: CategoryFriend}
	second := Birthday{Name: "Second", Month: 6, Day: 10, Category: CategoryFamily}

	got, ok := NextOccurrence([]Birthday{first, second}, ref)
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)

	got, ok = NextOccurrence([]Birthday{second, first}, ref)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Name)
}

func TestNextOccurrence_EmptyList(t *testing.T) {
	got, ok := NextOccurrence(nil, date(2026, time.June, 1))
	assert.False(t, ok)
	assert.Nil(t, got)
}
