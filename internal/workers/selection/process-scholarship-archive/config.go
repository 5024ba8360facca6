// internal/workers/selection/process-scholarship-archive/config.go
package processscholarshiparchive

import (
	"time"

	"scholarship-workers/internal/common/config"
)

type Config struct {
	MaxArchiveBytes    int64
	GraduationCredits  float64
	TwoYearCreditMax   float64
	ThreeYearCreditMax float64
	AuditIndex         string
	Scoring            config.ScoringConfig
	Timeout            time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxArchiveBytes:    50 * 1024 * 1024,
		GraduationCredits:  120,
		TwoYearCreditMax:   90,
		ThreeYearCreditMax: 115,
		AuditIndex:         "scholarship-audit",
		Timeout:            60 * time.Second,
	}
}

// FromAppConfig builds the worker config from the application config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg.Pipeline.MaxArchiveBytes > 0 {
		c.MaxArchiveBytes = cfg.Pipeline.MaxArchiveBytes
	}
	if cfg.Pipeline.GraduationCredits > 0 {
		c.GraduationCredits = cfg.Pipeline.GraduationCredits
	}
	if cfg.Pipeline.AuditIndex != "" {
		c.AuditIndex = cfg.Pipeline.AuditIndex
	}
	if cfg.Scoring.TwoYearCreditMax > 0 {
		c.TwoYearCreditMax = cfg.Scoring.TwoYearCreditMax
	}
	if cfg.Scoring.ThreeYearCreditMax > 0 {
		c.ThreeYearCreditMax = cfg.Scoring.ThreeYearCreditMax
	}
	c.Scoring = cfg.Scoring
	if wc, ok := cfg.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = time.Duration(wc.Timeout) * time.Millisecond
	}
	return c
}
