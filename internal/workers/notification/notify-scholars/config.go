// internal/workers/notification/notify-scholars/config.go
package notifyscholars

import (
	"time"

	"scholarship-workers/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	SMSSenderID  string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   false,
		SMSSenderID:  "SCHOLARSHIP",
		Timeout:      30 * time.Second,
	}
}

// FromAppConfig builds the worker config from the application config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	c.EmailEnabled = cfg.Notifications.Email.Enabled
	c.SMSEnabled = cfg.Notifications.SMS.Enabled
	if cfg.Notifications.Email.FromEmail != "" {
		c.FromEmail = cfg.Notifications.Email.FromEmail
	}
	if cfg.Notifications.SMS.DefaultSMSSenderID != "" {
		c.SMSSenderID = cfg.Notifications.SMS.DefaultSMSSenderID
	}
	if wc, ok := cfg.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = time.Duration(wc.Timeout) * time.Millisecond
	}
	return c
}
