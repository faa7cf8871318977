// Package status implements the contest lifecycle classification rules.
// Every surface (home, list, calendar) derives its grouping and badges from
// this package; none of them re-implements the day math inline.
package status

import (
	"sort"
	"time"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

// Classification thresholds. These are the only tunables of the rule
// engine and must be referenced instead of repeating the literals at call
// sites.
const (
	// UrgentMaxDays is the last day-count still labeled urgent (D-7).
	UrgentMaxDays = 7
	// ClosedVisibleDays is how many days a closed contest stays visible.
	ClosedVisibleDays = 7
	// OngoingMinDays is the first day-count labeled ongoing (D-8). Urgent
	// owns exactly D-7..D-0, so ongoing starts the day after that window.
	OngoingMinDays = 8
)

// Classify maps a contest and a reference date to its lifecycle bucket.
// It never fails: a deadline with no calendar meaning classifies as
// StatusHidden rather than raising.
func Classify(c types.Contest, ref time.Time) types.ContestStatus {
	left, ok := dates.DaysUntil(c.Deadline, ref)
	if !ok {
		return types.StatusHidden
	}

	switch {
	case left >= OngoingMinDays:
		return types.StatusOngoing
	case left >= 0 && left <= UrgentMaxDays:
		return types.StatusUrgent
	case left < 0 && left >= -ClosedVisibleDays:
		return types.StatusClosedRecent
	default:
		return types.StatusHidden
	}
}

// Groups holds the visible status buckets produced by PartitionByStatus.
// Hidden contests are dropped entirely.
type Groups struct {
	Ongoing      []types.Contest `json:"ongoing"`
	Urgent       []types.Contest `json:"urgent"`
	ClosedRecent []types.Contest `json:"closedRecent"`
}

// PartitionByStatus classifies every contest against ref, drops the hidden
// ones and groups the rest. Ongoing and urgent groups are sorted soonest
// deadline first, closed-recent most recently closed first.
func PartitionByStatus(contests []types.Contest, ref time.Time) Groups {
	var g Groups
	for _, c := range contests {
		switch Classify(c, ref) {
		case types.StatusOngoing:
			g.Ongoing = append(g.Ongoing, c)
		case types.StatusUrgent:
			g.Urgent = append(g.Urgent, c)
		case types.StatusClosedRecent:
			g.ClosedRecent = append(g.ClosedRecent, c)
		case types.StatusHidden:
			// dropped
		}
	}

	SortByDeadlineAsc(g.Ongoing)
	SortByDeadlineAsc(g.Urgent)
	SortByDeadlineDesc(g.ClosedRecent)
	return g
}

// SortByDeadlineAsc sorts contests soonest deadline first, in place.
// Contests with an unparseable deadline sort last.
func SortByDeadlineAsc(contests []types.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		return deadlineSortKey(contests[i], farFuture) < deadlineSortKey(contests[j], farFuture)
	})
}

// SortByDeadlineDesc sorts contests most recent deadline first, in place.
// Contests with an unparseable deadline again sort last.
func SortByDeadlineDesc(contests []types.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		return deadlineSortKey(contests[i], farPast) > deadlineSortKey(contests[j], farPast)
	})
}

// Sentinels for unparseable deadlines so they sink to the end of either
// sort direction. By construction only classified contests reach the
// partition sorts, but the helpers are also used standalone.
const (
	farFuture = int64(1) << 62
	farPast   = -(int64(1) << 62)
)

func deadlineSortKey(c types.Contest, missing int64) int64 {
	d, ok := dates.ParseDateOnly(c.Deadline)
	if !ok {
		return missing
	}
	return d.UnixMilli()
}
