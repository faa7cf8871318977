package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyeonlab/contest-board/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the contest listing, home dashboard, calendar, and iCalendar endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessor, err := buildAccessor(cfg)
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.EffectivePort()
	}

	srv, err := server.New(server.Config{
		Port:        port,
		Accessor:    accessor,
		RefreshCron: cfg.EffectiveRefreshCron(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
