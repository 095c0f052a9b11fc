package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultEndpoint     = "https://notify-api.line.me/api/notify"
	defaultLogTailLines = 10
	defaultSendType     = "ONLY_FAILURE"
	defaultPollSchedule = "@every 1m"
	defaultGroupID      = "linenotify"
	defaultLogLevel     = "info"
	defaultLogFormat    = "auto"
	defaultLogMaxSizeMB = 10
	defaultLogBackups   = 3
	defaultLogMaxAge    = 28
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("notify.endpoint", defaultEndpoint)
	v.SetDefault("notify.request_timeout", "0s")
	v.SetDefault("notify.log_tail_lines", defaultLogTailLines)
	v.SetDefault("notify.default.send_type", defaultSendType)
	v.SetDefault("notify.default.notify_on_status_change", false)
	v.SetDefault("notify.default.token_name", "")

	v.SetDefault("token_store.driver", "")
	v.SetDefault("token_store.dsn", "")

	v.SetDefault("jenkins.url", "")
	v.SetDefault("jenkins.user", "")
	v.SetDefault("jenkins.api_token", "")
	v.SetDefault("jenkins.poll_schedule", defaultPollSchedule)
	v.SetDefault("jenkins.request_timeout", "30s")
	v.SetDefault("jenkins.jobs", []string{})

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "")
	v.SetDefault("kafka.group_id", defaultGroupID)

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", defaultLogMaxSizeMB)
	v.SetDefault("log.max_backups", defaultLogBackups)
	v.SetDefault("log.max_age_days", defaultLogMaxAge)
	v.SetDefault("log.compress", false)

	v.SetDefault("lock_path", defaultLockPath())
}

func defaultLockPath() string {
	return filepath.Join(os.TempDir(), "linenotify.lock")
}

// searchPaths lists the directories probed for linenotify.yaml when no
// explicit file is given.
func searchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "linenotify"))
	}
	return paths
}
