package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/observability"
	"github.com/moyeonlab/contest-board/internal/status"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Print the home dashboard",
	Long:  `Print the home dashboard groups: closing soon, ongoing, and recently closed contests.`,
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, _ []string) error {
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
	groups := status.PartitionByStatus(contests, today)
	observability.NewPrinter(os.Stdout).PrintHomeGroups(groups, today)
	return nil
}
