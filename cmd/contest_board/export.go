package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moyeonlab/contest-board/internal/dates"
	"github.com/moyeonlab/contest-board/internal/ics"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contests as an iCalendar feed",
	Long:  `Export the visible contests' start and deadline events as an iCalendar (.ics) file, or to stdout when no output path is given.`,
	RunE:  runExport,
}

var exportOutputFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output .ics file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
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

	feed := ics.Export(contests, dates.StartOfToday())

	if exportOutputFile == "" {
		_, err = fmt.Fprint(os.Stdout, feed)
		return err
	}

	if err := os.WriteFile(exportOutputFile, []byte(feed), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", exportOutputFile)
	return nil
}
