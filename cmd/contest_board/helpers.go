package main

import (
	"fmt"

	"github.com/moyeonlab/contest-board/internal/config"
	"github.com/moyeonlab/contest-board/internal/source"
)

// configFile is shared by all commands; empty means defaults plus
// environment overrides.
var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file")
}

// loadConfig builds the effective configuration: file (if given), then
// environment overrides, then validation.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildAccessor assembles the contest source chain: remote admin feeds
// when configured, degrading to the bundled dataset, behind a TTL cache.
func buildAccessor(cfg *config.Config) (source.Accessor, error) {
	fallback, err := source.NewFallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled contests: %w", err)
	}

	var accessor source.Accessor = fallback
	if len(cfg.FeedURLs) > 0 {
		remote := source.NewRemote(cfg.FeedURLs, &source.RemoteOptions{
			Timeout: cfg.EffectiveRequestTimeout(),
		})
		accessor = source.WithFallback(remote, fallback)
	}

	return source.NewCached(accessor, cfg.EffectiveCacheTTL()), nil
}
