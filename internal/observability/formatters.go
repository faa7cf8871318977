// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moyeonlab/contest-board/internal/calendar"
	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/status"
	"github.com/moyeonlab/contest-board/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s\n", line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintHomeGroups outputs the home dashboard's status groups.
func (p *Printer) PrintHomeGroups(groups status.Groups, ref time.Time) {
	var sb strings.Builder

	writeGroup := func(label string, contests []types.Contest) {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", label, len(contests)))
		count := min(len(contests), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := contests[i]
			sb.WriteString(fmt.Sprintf("  • %s %s\n", dDayLabel(c, ref), c.Title))
		}
		if len(contests) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(contests)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeGroup("마감임박", groups.Urgent)
	writeGroup("진행중", groups.Ongoing)
	writeGroup("최근마감", groups.ClosedRecent)

	p.printBox("공모전 현황 "+dates.FormatDateOnly(ref), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContestList outputs a filtered contest listing.
func (p *Printer) PrintContestList(contests []types.Contest, ref time.Time) {
	if len(contests) == 0 {
		p.printBox("공모전 목록", "조건에 맞는 공모전이 없습니다.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("총 %d개\n\n", len(contests)))
	for _, c := range contests {
		sb.WriteString(fmt.Sprintf("%-6s %s\n", dDayLabel(c, ref), c.Title))
		sb.WriteString(fmt.Sprintf("       %s · %s · 마감 %s\n", c.Category, c.Organizer, c.Deadline))
	}

	p.printBox("공모전 목록", strings.TrimSuffix(sb.String(), "\n"))
}

// weekdayNames holds the single-character Korean weekday labels, Sunday
// first to line up with time.Weekday.
var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// PrintMonth outputs a month's event grid, one line per day with events.
func (p *Printer) PrintMonth(year int, month time.Month, grid map[int][]types.CalendarEvent, ref time.Time) {
	var sb strings.Builder

	if len(grid) == 0 {
		sb.WriteString("표시할 일정이 없습니다.")
	}
	first := calendar.FirstWeekday(year, month)
	for day := 1; day <= calendar.DaysIn(year, month); day++ {
		events, ok := grid[day]
		if !ok {
			continue
		}
		weekday := weekdayNames[(int(first)+day-1)%7]
		sb.WriteString(fmt.Sprintf("%2d일 (%s)\n", day, weekday))
		for _, e := range events {
			sb.WriteString(fmt.Sprintf("    [%s] %s\n", calendar.EventBadge(e, ref), e.Contest.Title))
		}
	}

	p.printBox(fmt.Sprintf("%d년 %d월", year, int(month)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTodaysDeadlines outputs the contests deadlining today.
func (p *Printer) PrintTodaysDeadlines(contests []types.Contest, ref time.Time) {
	if len(contests) == 0 {
		p.printBox("오늘의 마감 "+dates.FormatDateOnly(ref), "오늘 마감 공모전 없음")
		return
	}

	var sb strings.Builder
	for _, c := range contests {
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", c.Title, c.Organizer))
	}
	p.printBox("오늘의 마감 "+dates.FormatDateOnly(ref), strings.TrimSuffix(sb.String(), "\n"))
}

// dDayLabel renders the card-style D-day badge for a contest. The label is
// derived from the shared day math, never recomputed locally.
func dDayLabel(c types.Contest, ref time.Time) string {
	left, ok := dates.DaysUntil(c.Deadline, ref)
	if !ok {
		return "D-?"
	}
	switch {
	case left == 0:
		return "D-Day"
	case left > 0:
		return fmt.Sprintf("D-%d", left)
	default:
		return fmt.Sprintf("D+%d", -left)
	}
}
