// Package ics renders the visible contests as an iCalendar feed so
// students can subscribe to deadlines from their own calendar apps.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/moyeonlab/contest-board/internal/calendar"
	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/status"
	"github.com/moyeonlab/contest-board/internal/types"
)

const (
	productID    = "-//moyeonlab//contest-board//KO"
	calendarName = "ERICA 공모전 캘린더"
	uidSuffix    = "contest-board"
)

// Export serializes every non-hidden contest as all-day VEVENTs: one for
// the application start (when present) and one for the deadline. Summaries
// carry the same badge labels the calendar page shows. ref is the
// reference date for both classification and badge labeling.
func Export(contests []types.Contest, ref time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(calendarName)

	for _, c := range contests {
		if status.Classify(c, ref) == types.StatusHidden {
			continue
		}

		if start, ok := dates.ParseDateOnly(c.StartDate); ok {
			addAllDayEvent(cal, c, types.EventStart, start, ref)
		}
		if end, ok := effectiveEnd(c); ok {
			addAllDayEvent(cal, c, types.EventDeadline, end, ref)
		}
	}

	return cal.Serialize()
}

func addAllDayEvent(cal *ical.Calendar, c types.Contest, kind types.EventKind, day time.Time, ref time.Time) {
	badge := calendar.EventBadge(types.CalendarEvent{Kind: kind, Contest: c}, ref)

	event := cal.AddEvent(eventUID(c, kind))
	event.SetDtStampTime(ref)
	event.SetAllDayStartAt(day)
	// All-day DTEND is exclusive per RFC 5545.
	event.SetAllDayEndAt(day.AddDate(0, 0, 1))
	event.SetSummary(fmt.Sprintf("[%s] %s", badge, c.Title))
	if c.Summary != "" {
		event.SetDescription(c.Summary)
	}
	if c.Organizer != "" {
		event.SetLocation(c.Organizer)
	}
	if c.SourceURL != "" {
		event.SetURL(c.SourceURL)
	}
}

func eventUID(c types.Contest, kind types.EventKind) string {
	return fmt.Sprintf("%s-%s@%s", c.ID, kind, uidSuffix)
}

// effectiveEnd mirrors the calendar projector's deadline fallback.
func effectiveEnd(c types.Contest) (time.Time, bool) {
	if d, ok := dates.ParseDateOnly(c.Deadline); ok {
		return d, true
	}
	return dates.ParseDateOnly(c.EndDate)
}
