package config

import (
	"fmt"
	"strings"

	"linenotify/internal/errors"
	"linenotify/internal/usecase"
)

// Validate checks settings that would otherwise fail late. Send types and
// token names are deliberately not checked here: they are reported per build.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", errors.ErrConfigInvalid)
	}

	if cfg.Notify.LogTailLines < 0 || cfg.Notify.LogTailLines > usecase.DefaultLogTailLines {
		return fmt.Errorf("%w: notify.log_tail_lines must be between 0 and %d", errors.ErrConfigInvalid, usecase.DefaultLogTailLines)
	}
	if cfg.Notify.RequestTimeout < 0 {
		return fmt.Errorf("%w: notify.request_timeout must not be negative", errors.ErrConfigInvalid)
	}

	switch cfg.TokenStore.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: token_store.driver %q is not one of sqlite, postgres", errors.ErrConfigInvalid, cfg.TokenStore.Driver)
	}
	if cfg.TokenStore.Driver != "" && cfg.TokenStore.DSN == "" {
		return fmt.Errorf("%w: token_store.dsn is required for driver %s", errors.ErrConfigInvalid, cfg.TokenStore.Driver)
	}

	for i, t := range cfg.Tokens {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: tokens[%d].name must not be blank", errors.ErrConfigInvalid, i)
		}
		if strings.TrimSpace(t.Token) == "" {
			return fmt.Errorf("%w: tokens[%d].token must not be blank", errors.ErrConfigInvalid, i)
		}
	}

	if len(cfg.Jenkins.Jobs) > 0 && cfg.Jenkins.URL == "" {
		return fmt.Errorf("%w: jenkins.url is required when jenkins.jobs is set", errors.ErrConfigInvalid)
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("%w: kafka.topic is required when kafka.brokers is set", errors.ErrConfigInvalid)
	}

	return nil
}
