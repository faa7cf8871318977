// Package calendar projects contests onto a month grid: which days carry a
// start or deadline occurrence, how those occurrences are ordered within a
// day, and which badge each one displays.
package calendar

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

// Badge labels shown on calendar cells.
const (
	BadgeStart    = "신청 시작" // application opens
	BadgeDeadline = "마감일"   // deadline, alert styling
	BadgeClosed   = "신청 마감" // deadline already past, muted styling
)

// ProjectMonth maps each day of the displayed year/month to the ordered
// list of event occurrences landing on it. A contest contributes a START
// event where its start date falls in the month and a DEADLINE event where
// its effective end date does; both are kept even when they coincide.
// Days without events are absent from the map. A contest with neither a
// parseable start nor end date is silently omitted.
//
// Within a day, START events sort before DEADLINE events; ties within a
// kind break by Korean-collated title, ascending.
func ProjectMonth(contests []types.Contest, year int, month time.Month) map[int][]types.CalendarEvent {
	grid := make(map[int][]types.CalendarEvent)

	add := func(d time.Time, e types.CalendarEvent) {
		if d.Year() != year || d.Month() != month {
			return
		}
		grid[d.Day()] = append(grid[d.Day()], e)
	}

	for _, c := range contests {
		if start, ok := dates.ParseDateOnly(c.StartDate); ok {
			add(start, types.CalendarEvent{Kind: types.EventStart, Contest: c})
		}
		if end, ok := effectiveEnd(c); ok {
			add(end, types.CalendarEvent{Kind: types.EventDeadline, Contest: c})
		}
	}

	collator := titleCollator()
	for day := range grid {
		events := grid[day]
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Kind != events[j].Kind {
				return events[i].Kind == types.EventStart
			}
			return collator.CompareString(events[i].Contest.Title, events[j].Contest.Title) < 0
		})
	}

	return grid
}

// EventBadge returns the display label for an event, evaluated against
// today rather than the displayed month: a deadline cell in a past month
// shows as closed even though the grid cell itself is static.
func EventBadge(e types.CalendarEvent, today time.Time) string {
	if e.Kind == types.EventStart {
		return BadgeStart
	}

	end, ok := effectiveEnd(e.Contest)
	if !ok {
		return BadgeDeadline
	}
	if end.Before(dates.StartOfDay(today)) {
		return BadgeClosed
	}
	return BadgeDeadline
}

// TodaysDeadlines returns the contests whose deadline is exactly today,
// Korean-collated by title. The result is independent of the displayed
// month.
func TodaysDeadlines(contests []types.Contest, today time.Time) []types.Contest {
	todayStr := dates.FormatDateOnly(dates.StartOfDay(today))

	var due []types.Contest
	for _, c := range contests {
		if c.Deadline == todayStr {
			due = append(due, c)
		}
	}

	collator := titleCollator()
	sort.SliceStable(due, func(i, j int) bool {
		return collator.CompareString(due[i].Title, due[j].Title) < 0
	})
	return due
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the first day of the month.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// effectiveEnd is the deadline when parseable, falling back to end_date.
func effectiveEnd(c types.Contest) (time.Time, bool) {
	if d, ok := dates.ParseDateOnly(c.Deadline); ok {
		return d, true
	}
	return dates.ParseDateOnly(c.EndDate)
}

// titleCollator builds a Korean collator for title ordering. Collators are
// not safe for concurrent use, so each projection builds its own.
func titleCollator() *collate.Collator {
	return collate.New(language.Korean)
}
