// Package grid composes the per-day visual state of a whole year: for every
// calendar day, whether it is past/today/future plus the payday, birthday,
// and holiday overlays, together with year-level summary statistics.
package grid

import (
	"math"
	"time"

	"github.com/yeargrid/yeargrid/pkg/birthday"
	"github.com/yeargrid/yeargrid/pkg/calendar"
	"github.com/yeargrid/yeargrid/pkg/holiday"
	"github.com/yeargrid/yeargrid/pkg/payday"
)

// DayState is the resolved state of one calendar day. Exactly one of IsPast,
// IsToday, IsFuture holds; the overlay fields are independent and may all be
// set on the same day. Visual precedence among overlays (birthday over payday
// over base, holiday as a ring only) is the renderer's contract, not encoded
// here.
type DayState struct {
	Date        time.Time
	DayIndex    int
	IsPast      bool
	IsToday     bool
	IsFuture    bool
	IsPayday    bool
	Category    birthday.Category
	HasBirthday bool
	HolidayName string
	HasHoliday  bool
}

// YearSummary carries the derived scalar statistics for the reference date.
type YearSummary struct {
	Year         int
	TotalDays    int
	DaysElapsed  int
	DaysLeft     int
	PercentDone  int
	Week         int
	NextBirthday *birthday.Upcoming
	DaysToPayday int
}

// Result is the compositor output: one state per day of the year, in
// month-major order, plus the summary.
type Result struct {
	Days    []DayState
	Summary YearSummary
}

// Service combines the calendar arithmetic with the recurrence rules. It is
// a pure computation: same inputs, same outputs, safe for concurrent use.
type Service struct {
	holidays *holiday.Calendar
	paydays  payday.Schedule
}

func NewService(holidays *holiday.Calendar, paydays payday.Schedule) *Service {
	return &Service{holidays: holidays, paydays: paydays}
}

// Compute resolves every day of date's year against the reference date
// itself ("today"), the payday schedule, the holiday calendar, and the given
// birthday snapshot.
func (s *Service) Compute(date time.Time, birthdays []birthday.Birthday) Result {
	date = date.UTC()
	year := date.Year()
	totalDays := calendar.DaysInYear(year)
	todayIndex := calendar.DayOfYear(date) - 1

	// Month-major iteration matches the row-per-month layout downstream;
	// every day of the year is visited exactly once.
	days := make([]DayState, 0, totalDays)
	for month := time.January; month <= time.December; month++ {
		for dayOfMonth := 1; dayOfMonth <= calendar.DaysInMonth(year, month); dayOfMonth++ {
			d := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
			dayIndex := calendar.DayOfYear(d) - 1

			state := DayState{
				Date:     d,
				DayIndex: dayIndex,
				IsPast:   dayIndex < todayIndex,
				IsToday:  dayIndex == todayIndex,
				IsFuture: dayIndex > todayIndex,
				IsPayday: s.paydays.IsPayday(d),
			}
			if category, ok := birthday.CategoryForDate(birthdays, d); ok {
				state.Category = category
				state.HasBirthday = true
			}
			if name, ok := s.holidays.NameFor(d); ok {
				state.HolidayName = name
				state.HasHoliday = true
			}
			days = append(days, state)
		}
	}

	daysElapsed := todayIndex + 1
	next, _ := birthday.NextOccurrence(birthdays, date)
	summary := YearSummary{
		Year:         year,
		TotalDays:    totalDays,
		DaysElapsed:  daysElapsed,
		DaysLeft:     totalDays - daysElapsed,
		PercentDone:  int(math.Round(float64(daysElapsed) / float64(totalDays) * 100)),
		Week:         calendar.WeekNumber(date),
		NextBirthday: next,
		DaysToPayday: s.paydays.NextPayday(date),
	}

	return Result{Days: days, Summary: summary}
}
