// Package payday implements the fixed-period payday recurrence: every N days
// counted from an anchor date, extending in both directions.
package payday

import "time"

const (
	// DefaultEvery is the pay period in days.
	DefaultEvery = 28
	dayDuration  = 24 * time.Hour
)

// DefaultAnchor is the first known payday.
var DefaultAnchor = time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC)

// Schedule is a pure recurrence rule; it holds no state beyond its parameters.
type Schedule struct {
	Anchor time.Time
	Every  int
}

// NewSchedule returns a schedule with the given anchor and period, falling
// back to the defaults for zero values.
func NewSchedule(anchor time.Time, every int) Schedule {
	if anchor.IsZero() {
		anchor = DefaultAnchor
	}
	if every <= 0 {
		every = DefaultEvery
	}
	return Schedule{Anchor: anchor, Every: every}
}

// IsPayday reports whether t falls on a payday. Dates before the anchor are
// handled by normalizing the remainder to be non-negative.
func (s Schedule) IsPayday(t time.Time) bool {
	return s.daysSincePayday(t) == 0
}

// NextPayday returns the number of days from t to the next payday;
// 0 when t itself is a payday.
func (s Schedule) NextPayday(t time.Time) int {
	since := s.daysSincePayday(t)
	if since == 0 {
		return 0
	}
	return s.Every - since
}

func (s Schedule) daysSincePayday(t time.Time) int {
	t = t.UTC()
	anchor := time.Date(s.Anchor.Year(), s.Anchor.Month(), s.Anchor.Day(), 0, 0, 0, 0, time.UTC)
	current := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(current.Sub(anchor) / dayDuration)
	return ((days % s.Every) + s.Every) % s.Every
}
