// Package filter implements the user-facing contest filters: the list
// page's status/category/search/sort controls and the calendar sidebar's
// field/prize/team controls. Filters compose the classifier and the text
// heuristics; they never re-implement either.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/moyeonlab/contest-board/internal/heuristics"
	"github.com/moyeonlab/contest-board/internal/status"
	"github.com/moyeonlab/contest-board/internal/types"
)

// StatusFilter narrows the list to a single lifecycle bucket.
type StatusFilter string

// List status filters. OPEN shows only ongoing contests, URGENT only
// contests inside the D-7 window.
const (
	StatusAll    StatusFilter = "ALL"
	StatusOpen   StatusFilter = "OPEN"
	StatusUrgent StatusFilter = "URGENT"
)

// SortOrder selects the list ordering.
type SortOrder string

// List sort orders.
const (
	SortDeadline SortOrder = "DEADLINE" // soonest deadline first, dateless last
	SortNewest   SortOrder = "NEWEST"   // id descending
)

// ListOptions are the list page's filter controls. Zero values mean "no
// filter": every status, every category, no search, deadline sort.
type ListOptions struct {
	Status   StatusFilter
	Category types.Category
	Query    string
	Sort     SortOrder
}

// ApplyList filters and sorts contests for the list page. ref is the
// reference date for status classification.
func ApplyList(contests []types.Contest, opts ListOptions, ref time.Time) []types.Contest {
	result := make([]types.Contest, 0, len(contests))

	query := strings.ToLower(strings.TrimSpace(opts.Query))
	for _, c := range contests {
		if !matchesStatus(c, opts.Status, ref) {
			continue
		}
		if opts.Category != "" && c.Category != opts.Category {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		result = append(result, c)
	}

	switch opts.Sort {
	case SortNewest:
		sortByIDDesc(result)
	default:
		status.SortByDeadlineAsc(result)
	}
	return result
}

func matchesStatus(c types.Contest, f StatusFilter, ref time.Time) bool {
	switch f {
	case StatusOpen:
		return status.Classify(c, ref) == types.StatusOngoing
	case StatusUrgent:
		return status.Classify(c, ref) == types.StatusUrgent
	default:
		return true
	}
}

// matchesQuery searches title, organizer, summary and tags,
// case-insensitively.
func matchesQuery(c types.Contest, query string) bool {
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Organizer), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Summary), query) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(c.Tags, " ")), query)
}

func sortByIDDesc(contests []types.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		return contests[i].ID > contests[j].ID
	})
}

// CalendarOptions are the calendar sidebar's filter controls. An empty
// field set and RangeAll pass everything.
type CalendarOptions struct {
	Fields   []types.FieldKey
	Prize    types.PrizeRange
	TeamOnly bool
}

// ApplyCalendar filters contests for the calendar page. The prize filter
// parses the summary on every call; unknown amounts pass only when the
// bucket is ALL.
func ApplyCalendar(contests []types.Contest, opts CalendarOptions) []types.Contest {
	prize := opts.Prize
	if prize == "" {
		prize = types.RangeAll
	}

	result := make([]types.Contest, 0, len(contests))
	for _, c := range contests {
		if !heuristics.MatchesAnyField(c, opts.Fields) {
			continue
		}
		amount, known := heuristics.ParsePrizeAmount(c.Summary)
		if !heuristics.MatchesPrizeRange(amount, known, prize) {
			continue
		}
		if opts.TeamOnly && !heuristics.IsRecruitingTeam(c) {
			continue
		}
		result = append(result, c)
	}
	return result
}
