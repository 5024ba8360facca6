// internal/workers/selection/build-selection-report/config.go
package buildselectionreport

import (
	"time"

	"scholarship-workers/internal/common/config"
)

type Config struct {
	// RegistryPath locates the activity registry the output statistics
	// schema is read from.
	RegistryPath string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RegistryPath: "api/registry/activity-registry.json",
		Timeout:      30 * time.Second,
	}
}

// FromAppConfig builds the worker config from the application config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if wc, ok := cfg.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = time.Duration(wc.Timeout) * time.Millisecond
	}
	return c
}
