// Package config loads linenotify settings from a config file and
// LINENOTIFY_* environment variables.
package config

import (
	"time"

	"linenotify/internal/domain/model"
)

// Config contains runtime configuration values.
type Config struct {
	Notify     NotifyConfig     `mapstructure:"notify"`
	Jobs       []JobConfig      `mapstructure:"jobs"`
	Tokens     []TokenConfig    `mapstructure:"tokens"`
	TokenStore TokenStoreConfig `mapstructure:"token_store"`
	Jenkins    JenkinsConfig    `mapstructure:"jenkins"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Log        LogConfig        `mapstructure:"log"`
	LockPath   string           `mapstructure:"lock_path"`
}

// NotifyConfig controls message delivery.
type NotifyConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	// RequestTimeout of zero keeps the HTTP client's default.
	RequestTimeout time.Duration      `mapstructure:"request_timeout"`
	LogTailLines   int                `mapstructure:"log_tail_lines"`
	Default        model.PolicyConfig `mapstructure:"default"`
}

// JobConfig is the policy of one project. Unset fields inherit
// notify.default.
type JobConfig struct {
	Name                 string `mapstructure:"name"`
	SendType             string `mapstructure:"send_type"`
	NotifyOnStatusChange *bool  `mapstructure:"notify_on_status_change"`
	TokenName            string `mapstructure:"token_name"`
}

// TokenConfig is one named LINE Notify token.
type TokenConfig struct {
	Name  string `mapstructure:"name"`
	Token string `mapstructure:"token"`
}

// TokenStoreConfig selects an additional database-backed token list.
type TokenStoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// JenkinsConfig configures the Jenkins poller.
type JenkinsConfig struct {
	URL            string        `mapstructure:"url"`
	User           string        `mapstructure:"user"`
	APIToken       string        `mapstructure:"api_token"`
	PollSchedule   string        `mapstructure:"poll_schedule"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Jobs           []string      `mapstructure:"jobs"`
}

// KafkaConfig configures the build-event consumer.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// PolicyFor returns the policy configured for project, falling back to the
// default policy. Fields left unset in a job entry inherit the default.
func (c *Config) PolicyFor(project string) model.PolicyConfig {
	policy := c.Notify.Default
	for _, job := range c.Jobs {
		if job.Name != project {
			continue
		}
		if job.SendType != "" {
			policy.SendType = job.SendType
		}
		if job.TokenName != "" {
			policy.TokenName = job.TokenName
		}
		if job.NotifyOnStatusChange != nil {
			policy.NotifyOnStatusChange = *job.NotifyOnStatusChange
		}
		return policy
	}
	return policy
}

// Credentials returns the tokens listed in the config file.
func (c *Config) Credentials() []model.Credential {
	credentials := make([]model.Credential, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		credentials = append(credentials, model.Credential{Name: t.Name, Token: t.Token})
	}
	return credentials
}
