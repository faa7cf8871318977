package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyeonlab/contest-board/internal/config"
	"github.com/moyeonlab/contest-board/internal/source"
)

func TestLoadConfigDefaults(t *testing.T) {
	configFile = ""
	defer func() { configFile = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.FeedURLs)
	assert.Equal(t, config.DefaultPort, cfg.EffectivePort())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "feed_urls": ["https://example.com/contests"]}`), 0644))

	configFile = path
	defer func() { configFile = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.EffectivePort())
	assert.Equal(t, []string{"https://example.com/contests"}, cfg.FeedURLs)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"feed_urls": ["ftp://example.com"]}`), 0644))

	configFile = path
	defer func() { configFile = "" }()

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestBuildAccessorBundledOnly(t *testing.T) {
	accessor, err := buildAccessor(&config.Config{})
	require.NoError(t, err)

	_, ok := accessor.(*source.Cached)
	assert.True(t, ok, "accessor is cached")

	contests, err := accessor.Contests(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, contests)
}

func TestRunExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contests.ics")

	configFile = ""
	exportOutputFile = path
	defer func() { exportOutputFile = "" }()

	require.NoError(t, runExport(nil, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
}
