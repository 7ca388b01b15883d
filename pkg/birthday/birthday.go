// Package birthday holds the personal event model: annually recurring
// birthdays, their category priority, and the next-occurrence resolver.
package birthday

import (
	"fmt"
	"time"

	"github.com/yeargrid/yeargrid/pkg/calendar"
)

// Category ranks a birthday for display: a self birthday visually dominates a
// coincident family or friend birthday on the same day.
type Category string

const (
	CategorySelf   Category = "self"
	CategoryFamily Category = "family"
	CategoryFriend Category = "friend"
)

// categoriesByPriority is the fixed override order, highest first.
var categoriesByPriority = []Category{CategorySelf, CategoryFamily, CategoryFriend}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySelf, CategoryFamily, CategoryFriend:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown birthday category: %q", s)
}

// Birthday recurs every year on Month/Day. Year is the optional birth year,
// kept for age display only. Name doubles as the identity key for deletion;
// uniqueness is the caller's concern.
type Birthday struct {
	Name     string   `json:"name"`
	Month    int      `json:"month"`
	Day      int      `json:"day"`
	Category Category `json:"type"`
	Year     int      `json:"year,omitempty"`
}

// Matches reports whether t falls on this birthday. The comparison is
// year-independent; an impossible month/day pair (Feb 30) simply never
// matches.
func (b Birthday) Matches(t time.Time) bool {
	t = t.UTC()
	return int(t.Month()) == b.Month && t.Day() == b.Day
}

// CategoryForDate returns the highest-priority category among the birthdays
// falling on t, if any.
func CategoryForDate(birthdays []Birthday, t time.Time) (Category, bool) {
	for _, category := range categoriesByPriority {
		for _, b := range birthdays {
			if b.Category == category && b.Matches(t) {
				return category, true
			}
		}
	}
	return "", false
}

// Upcoming describes the nearest birthday from a reference date.
type Upcoming struct {
	Name      string `json:"name"`
	DaysUntil int    `json:"daysUntil"`
}

// NextOccurrence finds the birthday closest to ref. A birthday falling on ref
// itself wins outright regardless of list position; otherwise the minimum
// positive distance wins, with ties broken by input order.
func NextOccurrence(birthdays []Birthday, ref time.Time) (*Upcoming, bool) {
	if len(birthdays) == 0 {
		return nil, false
	}

	ref = ref.UTC()
	year := ref.Year()
	refDayOfYear := calendar.DayOfYear(ref)

	var closest *Upcoming
	for _, b := range birthdays {
		occurrenceThisYear := time.Date(year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
		occurrenceDayOfYear := calendar.DayOfYear(occurrenceThisYear)

		var daysUntil int
		if occurrenceDayOfYear >= refDayOfYear {
			daysUntil = occurrenceDayOfYear - refDayOfYear
		} else {
			// Already passed: remaining days of this year plus the ordinal in
			// the next, which handles the leap/non-leap boundary.
			occurrenceNextYear := time.Date(year+1, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
			daysUntil = (calendar.DaysInYear(year) - refDayOfYear) + calendar.DayOfYear(occurrenceNextYear)
		}

		if daysUntil == 0 {
			return &Upcoming{Name: b.Name, DaysUntil: 0}, true
		}
		if closest == nil || daysUntil < closest.DaysUntil {
			closest = &Upcoming{Name: b.Name, DaysUntil: daysUntil}
		}
	}

	return closest, closest != nil
}
