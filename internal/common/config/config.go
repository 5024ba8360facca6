// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Pipeline      PipelineConfig          `mapstructure:"pipeline"`
	Scoring       ScoringConfig           `mapstructure:"scoring"`
	Selection     SelectionConfig         `mapstructure:"selection"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
	URL        string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Specific Configuration Sections ---

// PipelineConfig holds settings for archive processing and document parsing.
type PipelineConfig struct {
	MaxArchiveBytes   int64   `mapstructure:"max_archive_bytes"`
	GraduationCredits float64 `mapstructure:"graduation_credits"`
	AuditIndex        string  `mapstructure:"audit_index"`
}

// ScoringConfig exposes the scoring policy. The point values and ceilings are
// configuration because the business rule itself has shifted between program
// revisions.
type ScoringConfig struct {
	GradeCeiling      float64 `mapstructure:"grade_ceiling"`
	CompletionCeiling float64 `mapstructure:"completion_ceiling"`
	BonusStemPoints   float64 `mapstructure:"bonus_stem_points"`
	BonusCertPoints   float64 `mapstructure:"bonus_cert_points"`
	BonusVolPoints    float64 `mapstructure:"bonus_volunteer_points"`
	BonusCap          float64 `mapstructure:"bonus_cap"`
	VolunteerMinHours float64 `mapstructure:"volunteer_min_hours"`

	// Graduation-credit thresholds used to corroborate an unconfirmed
	// four-year default program length.
	TwoYearCreditMax   float64 `mapstructure:"two_year_credit_max"`
	ThreeYearCreditMax float64 `mapstructure:"three_year_credit_max"`
}

// SelectionConfig holds settings for the select-scholars worker.
type SelectionConfig struct {
	DefaultQuota  int    `mapstructure:"default_quota"`
	WinnersSetKey string `mapstructure:"winners_set_key"`
}

// NotificationConfig holds settings for the notify-scholars worker.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled            bool   `mapstructure:"enabled"`
		DefaultSMSSenderID string `mapstructure:"default_sms_sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
