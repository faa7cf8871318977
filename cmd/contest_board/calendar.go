package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moyeonlab/contest-board/internal/calendar"
	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/filter"
	"github.com/moyeonlab/contest-board/internal/observability"
	"github.com/moyeonlab/contest-board/internal/types"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month's contest calendar",
	Long:  `Print the contest start and deadline events for a month, with the calendar sidebar filters: field, prize range, and team recruiting.`,
	RunE:  runCalendar,
}

var (
	calYear   int
	calMonth  int
	calFields []string
	calPrize  string
	calTeam   bool
	calToday  bool
)

func init() {
	calendarCmd.Flags().IntVar(&calYear, "year", 0, "Year to show (default: current)")
	calendarCmd.Flags().IntVar(&calMonth, "month", 0, "Month to show, 1-12 (default: current)")
	calendarCmd.Flags().StringSliceVar(&calFields, "fields", nil, "Field filters (e.g. 창업,IT/SW)")
	calendarCmd.Flags().StringVar(&calPrize, "prize", "", "Prize range: UNDER_100, 100_300, 300_1000, or OVER_1000")
	calendarCmd.Flags().BoolVar(&calTeam, "team", false, "Only contests recruiting team members")
	calendarCmd.Flags().BoolVar(&calToday, "today", false, "Show only today's deadlines")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, _ []string) error {
	if calMonth < 0 || calMonth > 12 {
		return fmt.Errorf("month must be in 1..12")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessor, err := buildAccessor(cfg)
	if err != nil {
		return err
	}

	contests, err := accessor.Contests(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load contests: %w", err)
	}

	filtered := filter.ApplyCalendar(contests, calendarFilterOptions())

	today := dates.StartOfToday()
	printer := observability.NewPrinter(os.Stdout)

	if calToday {
		printer.PrintTodaysDeadlines(calendar.TodaysDeadlines(filtered, today), today)
		return nil
	}

	year, month := calYear, time.Month(calMonth)
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = today.Month()
	}

	grid := calendar.ProjectMonth(filtered, year, month)
	printer.PrintMonth(year, month, grid, today)
	return nil
}

func calendarFilterOptions() filter.CalendarOptions {
	opts := filter.CalendarOptions{
		Prize:    types.PrizeRange(calPrize),
		TeamOnly: calTeam,
	}
	for _, f := range calFields {
		if f = strings.TrimSpace(f); f != "" {
			opts.Fields = append(opts.Fields, types.FieldKey(f))
		}
	}
	return opts
}
