// Package holiday resolves Malta public holidays: thirteen fixed dates plus
// moveable feasts computed per year from the date of Easter.
package holiday

import "time"

type monthDay struct {
	Month time.Month
	Day   int
}

// MoveableRule computes a moveable holiday's date for a given year.
type MoveableRule func(year int) (time.Month, int, string)

// Calendar answers "is this date a public holiday, and which one". The fixed
// table is consulted first; moveable rules are evaluated per year so more
// feasts can be added without restructuring.
type Calendar struct {
	fixed    map[monthDay]string
	moveable []MoveableRule
}

// NewMalta returns the Maltese public holiday calendar.
func NewMalta() *Calendar {
	return &Calendar{
		fixed: map[monthDay]string{
			{time.January, 1}:    "New Year's Day",
			{time.February, 10}:  "St. Paul's Shipwreck",
			{time.March, 19}:     "St. Joseph",
			{time.March, 31}:     "Freedom Day",
			{time.May, 1}:        "Worker's Day",
			{time.June, 7}:       "Sette Giugno",
			{time.June, 29}:      "St. Peter & St. Paul",
			{time.August, 15}:    "Assumption",
			{time.September, 8}:  "Victory Day",
			{time.September, 21}: "Independence Day",
			{time.December, 8}:   "Immaculate Conception",
			{time.December, 13}:  "Republic Day",
			{time.December, 25}:  "Christmas Day",
		},
		moveable: []MoveableRule{GoodFriday},
	}
}

// NameFor returns the holiday name for the given date, if any.
func (c *Calendar) NameFor(t time.Time) (string, bool) {
	t = t.UTC()
	if name, ok := c.fixed[monthDay{t.Month(), t.Day()}]; ok {
		return name, true
	}
	for _, rule := range c.moveable {
		month, day, name := rule(t.Year())
		if t.Month() == month && t.Day() == day {
			return name, true
		}
	}
	return "", false
}

// GoodFriday falls two days before Easter Sunday.
func GoodFriday(year int) (time.Month, int, string) {
	d := Easter(year).AddDate(0, 0, -2)
	return d.Month(), d.Day(), "Good Friday"
}

// Easter computes Easter Sunday for the given year using the Anonymous
// Gregorian (Meeus/Jones/Butcher) algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
