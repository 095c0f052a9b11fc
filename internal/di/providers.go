package di

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"linenotify/internal/adapter/credentials"
	"linenotify/internal/adapter/jenkins"
	"linenotify/internal/adapter/kafka"
	"linenotify/internal/adapter/line"
	"linenotify/internal/adapter/logging"
	"linenotify/internal/app"
	"linenotify/internal/config"
	"linenotify/internal/domain/ports"
	"linenotify/internal/usecase"
)

// Sender carries what the one-shot send command needs.
type Sender struct {
	Config       *config.Config
	Notification *usecase.BuildNotification
	Logger       ports.Logger
}

func provideRootLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	logger, closer, err := logging.NewRootLogger(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}, os.Stderr)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

func provideCredentialStore(cfg *config.Config, logger ports.Logger) (ports.CredentialStore, func(), error) {
	static := credentials.NewStaticStore(cfg.Credentials())
	if cfg.TokenStore.Driver == "" {
		return static, func() {}, nil
	}

	store, err := credentials.OpenSQLStore(context.Background(), cfg.TokenStore.Driver, cfg.TokenStore.DSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close token store", "error", err)
		}
	}
	return credentials.NewCompositeStore(logger, static, store), cleanup, nil
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return line.NewNotify(cfg.Notify.Endpoint, cfg.Notify.RequestTimeout, logger)
}

func providePoller(cfg *config.Config, handler ports.BuildEventHandler, logger ports.Logger) app.Poller {
	if len(cfg.Jenkins.Jobs) == 0 {
		return nil
	}
	client := jenkins.New(cfg.Jenkins.URL, cfg.Jenkins.User, cfg.Jenkins.APIToken, cfg.Jenkins.RequestTimeout, logger)
	return jenkins.NewPoller(client, cfg.Jenkins.Jobs, cfg, handler, cfg.Notify.LogTailLines, logger)
}

func provideConsumer(cfg *config.Config, handler ports.BuildEventHandler, logger ports.Logger) (app.Consumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, cfg, handler, cfg.Notify.LogTailLines, logger)
	if err != nil {
		return nil, err
	}
	return consumer, nil
}

func provideApp(cfg *config.Config, poller app.Poller, consumer app.Consumer, logger ports.Logger) *app.App {
	return app.New(poller, consumer, cfg.LockPath, logger, cfg.Jenkins.PollSchedule)
}
