// internal/workers/selection/select-scholars/config.go
package selectscholars

import (
	"time"

	"scholarship-workers/internal/common/config"
)

type Config struct {
	DefaultQuota  int
	WinnersSetKey string
	Timeout       time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultQuota:  50,
		WinnersSetKey: "scholarship:winners",
		Timeout:       30 * time.Second,
	}
}

// FromAppConfig builds the worker config from the application config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg.Selection.DefaultQuota > 0 {
		c.DefaultQuota = cfg.Selection.DefaultQuota
	}
	if cfg.Selection.WinnersSetKey != "" {
		c.WinnersSetKey = cfg.Selection.WinnersSetKey
	}
	if wc, ok := cfg.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = time.Duration(wc.Timeout) * time.Millisecond
	}
	return c
}
