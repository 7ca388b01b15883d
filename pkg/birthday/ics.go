package birthday

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/yeargrid/yeargrid/internal/utils"
	"github.com/yeargrid/yeargrid/pkg/calendar"
)

const icalProdID = "-//yeargrid//birthday feed//EN"

// CalendarFeed serves the birthday collection as an iCalendar feed with one
// all-day event per birthday for the previous, current, and next year, so
// subscribed clients can scroll without an immediate re-sync.
func (h *Handler) CalendarFeed(clock utils.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		birthdays, err := h.service.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		feed, err := EncodeFeed(birthdays, calendar.NowInCET(clock))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(feed); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// EncodeFeed builds the iCalendar document for the given reference time.
func EncodeFeed(birthdays []Birthday, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icalProdID)

	currentYear := now.UTC().Year()
	for _, b := range birthdays {
		uidBase := feedUID(b)
		for _, year := range []int{currentYear - 1, currentYear, currentYear + 1} {
			if b.Year != 0 && year < b.Year {
				continue
			}

			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@yeargrid", uidBase, year))
			event.Props.SetText(ical.PropSummary, feedSummary(b, year))

			dtStamp := ical.NewProp(ical.PropDateTimeStamp)
			dtStamp.SetDateTime(now.UTC())
			event.Props.Set(dtStamp)

			dtStart := ical.NewProp(ical.PropDateTimeStart)
			dtStart.SetDate(time.Date(year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC))
			event.Props.Set(dtStart)

			cal.Children = append(cal.Children, event.Component)
		}
	}

	// Subscribed clients reject a VCALENDAR with no components, so an empty
	// collection gets a minimal stub instead.
	if len(cal.Children) == 0 {
		stub := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icalProdID + "\r\nEND:VCALENDAR\r\n"
		return []byte(stub), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("could not encode calendar feed: %w", err)
	}
	return buf.Bytes(), nil
}

func feedSummary(b Birthday, year int) string {
	if b.Year != 0 {
		return fmt.Sprintf("%s's birthday (%d)", b.Name, year-b.Year)
	}
	return fmt.Sprintf("%s's birthday", b.Name)
}

// feedUID derives a stable event UID so refreshes do not duplicate events in
// subscribed clients.
func feedUID(b Birthday) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%02d-%02d", b.Name, b.Month, b.Day)))
	return fmt.Sprintf("%x", sum[:8])
}
