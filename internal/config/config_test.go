package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)
	req.Equal("weekplanner.db", cfg.DatabasePath)
	req.Equal("backups", cfg.BackupDir)
	req.Equal(time.Duration(0), cfg.BackupEvery)
	req.Equal("info", cfg.LogLevel)
}

func TestLoadReadsEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("WEEKPLANNER_DB", "custom.db")
	t.Setenv("WEEKPLANNER_BACKUP_EVERY", "2h")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("custom.db", cfg.DatabasePath)
	req.Equal(2*time.Hour, cfg.BackupEvery)
}
