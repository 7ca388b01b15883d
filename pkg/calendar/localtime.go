package calendar

import (
	"regexp"
	"strconv"
	"time"

	"github.com/yeargrid/yeargrid/internal/utils"
)

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// NowInCET returns the current civil date in CET/CEST. CET is UTC+1; CEST
// (UTC+2) runs from the last Sunday of March at 01:00 UTC inclusive to the
// last Sunday of October at 01:00 UTC exclusive. This approximates one fixed
// timezone's rule; it is not a timezone database.
func NowInCET(clock utils.Clock) time.Time {
	now := clock.Now().UTC()
	offset := 1
	if inCEST(now) {
		offset = 2
	}
	return now.Add(time.Duration(offset) * time.Hour)
}

func inCEST(t time.Time) bool {
	year := t.Year()
	start := time.Date(year, time.March, LastSundayOfMonth(year, time.March), 1, 0, 0, 0, time.UTC)
	end := time.Date(year, time.October, LastSundayOfMonth(year, time.October), 1, 0, 0, 0, time.UTC)
	return !t.Before(start) && t.Before(end)
}

// ParseDateOrNow parses a strict YYYY-MM-DD date. Valid parses are anchored
// at 12:00 UTC to keep later day-of-year math away from midnight boundaries.
// An empty, malformed, or out-of-range input falls back to NowInCET; callers
// cannot distinguish "no date" from "bad date", which is the intended
// permissive behavior for the wallpaper endpoint.
func ParseDateOrNow(s string, clock utils.Clock) time.Time {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return NowInCET(clock)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return NowInCET(clock)
	}

	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}
