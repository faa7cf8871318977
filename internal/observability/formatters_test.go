package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/status"
	"github.com/moyeonlab/contest-board/internal/types"
)

var ref = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)

func TestPrintHomeGroups(t *testing.T) {
	groups := status.Groups{
		Urgent: []types.Contest{
			{ID: "c1", Title: "창업 경진대회", Deadline: dates.FormatDateOnly(ref.AddDate(0, 0, 3))},
		},
		Ongoing: []types.Contest{
			{ID: "c2", Title: "해커톤", Deadline: dates.FormatDateOnly(ref.AddDate(0, 0, 20))},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintHomeGroups(groups, ref)

	out := buf.String()
	assert.Contains(t, out, "마감임박 (1)")
	assert.Contains(t, out, "D-3 창업 경진대회")
	assert.Contains(t, out, "진행중 (1)")
	assert.Contains(t, out, "D-20 해커톤")
	assert.Contains(t, out, "최근마감 (0)")
}

func TestPrintContestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContestList(nil, ref)

	assert.Contains(t, buf.String(), "조건에 맞는 공모전이 없습니다.")
}

func TestDDayLabel(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		label    string
	}{
		{"Future", dates.FormatDateOnly(ref.AddDate(0, 0, 7)), "D-7"},
		{"Today", dates.FormatDateOnly(ref), "D-Day"},
		{"Past", dates.FormatDateOnly(ref.AddDate(0, 0, -2)), "D+2"},
		{"Unparseable", "상시", "D-?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Contest{Deadline: tt.deadline}
			assert.Equal(t, tt.label, dDayLabel(c, ref))
		})
	}
}

func TestPrintMonth(t *testing.T) {
	grid := map[int][]types.CalendarEvent{
		5: {{Kind: types.EventStart, Contest: types.Contest{Title: "해커톤", Deadline: "2024-06-20"}}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMonth(2024, time.June, grid, ref)

	out := buf.String()
	assert.Contains(t, out, "2024년 6월")
	assert.Contains(t, out, " 5일 (수)")
	assert.Contains(t, out, "[신청 시작] 해커톤")
}
