// Package dates provides day-granularity date parsing and arithmetic for
// contest deadlines. All values are local-midnight aligned; there is no
// sub-day comparison anywhere in the system.
package dates

import (
	"math"
	"time"
)

// Layout is the canonical date-only form used by the contest feed.
const Layout = "2006-01-02"

// ParseDateOnly parses a strict YYYY-MM-DD string as local midnight.
// It returns the zero time and false for empty input or anything that is
// not a valid calendar date; callers must treat that as "cannot classify",
// never as an error.
func ParseDateOnly(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// StartOfToday returns the current date truncated to local midnight.
func StartOfToday() time.Time {
	return StartOfDay(time.Now())
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDateOnly is the inverse of ParseDateOnly: zero-padded YYYY-MM-DD.
func FormatDateOnly(d time.Time) string {
	return d.Format(Layout)
}

// DaysUntil returns the signed day count from ref (truncated to its own
// midnight) to the deadline string: positive for a future deadline, zero
// for today, negative once past. The second return is false when the
// deadline string has no calendar meaning.
//
// Both operands are midnight-aligned, so dividing the difference by 24h is
// exact apart from DST-shortened days, which rounding absorbs.
func DaysUntil(deadline string, ref time.Time) (int, bool) {
	end, ok := ParseDateOnly(deadline)
	if !ok {
		return 0, false
	}
	base := StartOfDay(ref)
	days := end.Sub(base).Hours() / 24
	return int(math.Round(days)), true
}
