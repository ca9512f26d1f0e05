package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config keeps runtime settings for the planner host. Every field has a
// default; the app runs with no environment at all.
type Config struct {
	DatabasePath string        `envconfig:"DB" default:"weekplanner.db"`
	BackupDir    string        `envconfig:"BACKUP_DIR" default:"backups"`
	BackupEvery  time.Duration `envconfig:"BACKUP_EVERY" default:"0"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from WEEKPLANNER_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("weekplanner", &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}
