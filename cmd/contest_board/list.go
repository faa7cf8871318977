package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/filter"
	"github.com/moyeonlab/contest-board/internal/observability"
	"github.com/moyeonlab/contest-board/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contests with filters",
	Long:  `List visible contests filtered by status, category, and search text, sorted by deadline or recency.`,
	RunE:  runList,
}

var (
	listStatus   string
	listCategory string
	listQuery    string
	listSort     string
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "ALL", "Status filter: ALL, OPEN, or URGENT")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Category filter (e.g. 교내 공모전)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Search text over title, organizer, and tags")
	listCmd.Flags().StringVar(&listSort, "sort", "DEADLINE", "Sort order: DEADLINE or NEWEST")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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

	today := dates.StartOfToday()
	filtered := filter.ApplyList(contests, filter.ListOptions{
		Status:   filter.StatusFilter(listStatus),
		Category: types.Category(listCategory),
		Query:    listQuery,
		Sort:     filter.SortOrder(listSort),
	}, today)

	observability.NewPrinter(os.Stdout).PrintContestList(filtered, today)
	return nil
}
