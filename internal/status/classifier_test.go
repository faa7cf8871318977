package status

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

// ref is a fixed mid-day reference so tests are independent of wall clock.
var ref = time.Date(2024, time.June, 10, 13, 30, 0, 0, time.Local)

// contestDueIn builds a contest whose deadline is offset days from ref.
func contestDueIn(offset int) types.Contest {
	return types.Contest{
		ID:       fmt.Sprintf("c%+d", offset),
		Title:    fmt.Sprintf("offset %+d", offset),
		Deadline: dates.FormatDateOnly(dates.StartOfDay(ref).AddDate(0, 0, offset)),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		expected types.ContestStatus
	}{
		{"Due today is urgent", 0, types.StatusUrgent},
		{"D-1 is urgent", 1, types.StatusUrgent},
		{"D-7 is the last urgent day", 7, types.StatusUrgent},
		{"D-8 is the first ongoing day", 8, types.StatusOngoing},
		{"Far future is ongoing", 100, types.StatusOngoing},
		{"Closed yesterday stays visible", -1, types.StatusClosedRecent},
		{"Closed a week ago stays visible", -7, types.StatusClosedRecent},
		{"Closed eight days ago is hidden", -8, types.StatusHidden},
		{"Long closed is hidden", -100, types.StatusHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(contestDueIn(tt.offset), ref))
		})
	}
}

func TestClassifyUnparseableDeadlineIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
	}{
		{"Empty deadline", ""},
		{"Nonsense date", "2024-13-40"},
		{"Free text", "상시 모집"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Contest{ID: "x", Title: "x", Deadline: tt.deadline}
			assert.Equal(t, types.StatusHidden, Classify(c, ref))
		})
	}
}

// TestClassifyPartitionsEveryDayCount sweeps the whole +/-100 day window and
// checks that the buckets tile the integer line with no gaps or overlaps.
func TestClassifyPartitionsEveryDayCount(t *testing.T) {
	for offset := -100; offset <= 100; offset++ {
		st := Classify(contestDueIn(offset), ref)

		var expected types.ContestStatus
		switch {
		case offset >= 8:
			expected = types.StatusOngoing
		case offset >= 0:
			expected = types.StatusUrgent
		case offset >= -7:
			expected = types.StatusClosedRecent
		default:
			expected = types.StatusHidden
		}
		require.Equal(t, expected, st, "offset %d", offset)
	}
}

// TestClassifyLifecycleProgression walks one contest through its whole
// lifecycle by advancing the reference date.
func TestClassifyLifecycleProgression(t *testing.T) {
	c := contestDueIn(7) // deadline at ref+7

	assert.Equal(t, types.StatusUrgent, Classify(c, ref), "D-7")
	assert.Equal(t, types.StatusUrgent, Classify(c, ref.AddDate(0, 0, 1)), "D-6")
	assert.Equal(t, types.StatusClosedRecent, Classify(c, ref.AddDate(0, 0, 8)), "one day past deadline")
	assert.Equal(t, types.StatusHidden, Classify(c, ref.AddDate(0, 0, 15)), "eight days past deadline")
}

func TestPartitionByStatus(t *testing.T) {
	contests := []types.Contest{
		contestDueIn(30),
		contestDueIn(8),
		contestDueIn(3),
		contestDueIn(0),
		contestDueIn(-2),
		contestDueIn(-6),
		contestDueIn(-50),
		{ID: "bad", Title: "bad", Deadline: "not-a-date"},
	}

	g := PartitionByStatus(contests, ref)

	require.Len(t, g.Ongoing, 2)
	require.Len(t, g.Urgent, 2)
	require.Len(t, g.ClosedRecent, 2)

	// Ongoing/urgent: soonest deadline first.
	assert.Equal(t, contestDueIn(8).Deadline, g.Ongoing[0].Deadline)
	assert.Equal(t, contestDueIn(30).Deadline, g.Ongoing[1].Deadline)
	assert.Equal(t, contestDueIn(0).Deadline, g.Urgent[0].Deadline)
	assert.Equal(t, contestDueIn(3).Deadline, g.Urgent[1].Deadline)

	// Closed-recent: most recently closed first.
	assert.Equal(t, contestDueIn(-2).Deadline, g.ClosedRecent[0].Deadline)
	assert.Equal(t, contestDueIn(-6).Deadline, g.ClosedRecent[1].Deadline)
}

// TestPartitionByStatusDisjoint checks that no contest lands in two groups
// and hidden contests land in none.
func TestPartitionByStatusDisjoint(t *testing.T) {
	var contests []types.Contest
	for offset := -20; offset <= 20; offset++ {
		contests = append(contests, contestDueIn(offset))
	}

	g := PartitionByStatus(contests, ref)

	seen := make(map[string]int)
	for _, c := range g.Ongoing {
		seen[c.ID]++
	}
	for _, c := range g.Urgent {
		seen[c.ID]++
	}
	for _, c := range g.ClosedRecent {
		seen[c.ID]++
	}

	for id, n := range seen {
		assert.Equal(t, 1, n, "contest %s appears in more than one group", id)
	}
	assert.Len(t, seen, 28, "offsets -7..20 are visible, everything older is hidden")
	assert.NotContains(t, seen, contestDueIn(-8).ID)
}

func TestSortByDeadlineAscUnparseableLast(t *testing.T) {
	contests := []types.Contest{
		{ID: "a", Deadline: "oops"},
		{ID: "b", Deadline: "2024-06-20"},
		{ID: "c", Deadline: "2024-06-12"},
	}

	SortByDeadlineAsc(contests)

	assert.Equal(t, []string{"c", "b", "a"}, []string{contests[0].ID, contests[1].ID, contests[2].ID})
}
