package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/types"
)

var ref = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)

func dueIn(offset int) string {
	return dates.FormatDateOnly(ref.AddDate(0, 0, offset))
}

func TestExportRoundTrips(t *testing.T) {
	contests := []types.Contest{
		{ID: "c1", Title: "창업 경진대회", Organizer: "창업교육센터",
			StartDate: dueIn(-3), Deadline: dueIn(4), Summary: "총 상금 500만원",
			SourceURL: "https://example.com/notice/1"},
		{ID: "c2", Title: "해커톤", Deadline: dueIn(12)},
	}

	serialized := Export(contests, ref)

	cal, err := ical.ParseCalendar(strings.NewReader(serialized))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3, "c1 contributes start+deadline, c2 deadline only")

	uids := make(map[string]bool)
	for _, e := range events {
		uid := e.GetProperty(ical.ComponentPropertyUniqueId)
		require.NotNil(t, uid)
		uids[uid.Value] = true
	}
	assert.True(t, uids["c1-START@contest-board"])
	assert.True(t, uids["c1-DEADLINE@contest-board"])
	assert.True(t, uids["c2-DEADLINE@contest-board"])
}

func TestExportBadgeLabels(t *testing.T) {
	contests := []types.Contest{
		{ID: "c1", Title: "마감 임박", StartDate: dueIn(-20), Deadline: dueIn(2)},
	}

	serialized := Export(contests, ref)

	assert.Contains(t, serialized, "[신청 시작] 마감 임박")
	assert.Contains(t, serialized, "[마감일] 마감 임박")
}

func TestExportClosedContestUsesMutedLabel(t *testing.T) {
	contests := []types.Contest{
		{ID: "c1", Title: "끝난 공모전", Deadline: dueIn(-3)},
	}

	serialized := Export(contests, ref)
	assert.Contains(t, serialized, "[신청 마감] 끝난 공모전")
}

func TestExportSkipsHiddenContests(t *testing.T) {
	contests := []types.Contest{
		{ID: "old", Title: "오래된 공모전", Deadline: dueIn(-30)},
		{ID: "bad", Title: "날짜 없음", Deadline: "미정"},
		{ID: "ok", Title: "진행중 공모전", Deadline: dueIn(10)},
	}

	serialized := Export(contests, ref)

	cal, err := ical.ParseCalendar(strings.NewReader(serialized))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	assert.NotContains(t, serialized, "오래된 공모전")
	assert.NotContains(t, serialized, "날짜 없음")
}
