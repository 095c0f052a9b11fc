//go:build wireinject

package di

import (
	"github.com/google/wire"

	"linenotify/internal/adapter/logging"
	"linenotify/internal/app"
	"linenotify/internal/config"
	"linenotify/internal/domain/ports"
	"linenotify/internal/usecase"
)

var baseSet = wire.NewSet(
	config.Load,
	provideRootLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.ZeroLogger)),
)

var notificationSet = wire.NewSet(
	provideCredentialStore,
	usecase.NewTokenRegistry,
	provideNotifier,
	usecase.NewBuildNotification,
	wire.Bind(new(ports.BuildEventHandler), new(*usecase.BuildNotification)),
)

// InitializeApp wires the notification daemon.
func InitializeApp(configPath string) (*app.App, func(), error) {
	wire.Build(
		baseSet,
		notificationSet,
		providePoller,
		provideConsumer,
		provideApp,
	)
	return nil, nil, nil
}

// InitializeSender wires the one-shot notification used by the send command.
func InitializeSender(configPath string) (*Sender, func(), error) {
	wire.Build(
		baseSet,
		notificationSet,
		wire.Struct(new(Sender), "*"),
	)
	return nil, nil, nil
}

// InitializeCredentialStore wires the configured token stores.
func InitializeCredentialStore(configPath string) (ports.CredentialStore, func(), error) {
	wire.Build(
		baseSet,
		provideCredentialStore,
	)
	return nil, nil, nil
}
