package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"linenotify/internal/domain/ports"
	"linenotify/internal/errors"
)

// Poller checks the build host for finished builds.
type Poller interface {
	Poll(ctx context.Context)
}

// Consumer receives pushed build events until ctx is done.
type Consumer interface {
	Run(ctx context.Context) error
}

// App runs the notification daemon: a scheduled build-host poller and an
// optional event consumer. Only one instance may run per lock file.
type App struct {
	cron     *cron.Cron
	poller   Poller
	consumer Consumer
	lock     *flock.Flock
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. poller or consumer may be nil, not both.
func New(poller Poller, consumer Consumer, lockPath string, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		poller:   poller,
		consumer: consumer,
		lock:     flock.New(lockPath),
		logger:   logger,
		schedule: schedule,
	}
}

// Run blocks until ctx is cancelled or the consumer fails.
func (a *App) Run(ctx context.Context) error {
	if a.poller == nil && a.consumer == nil {
		return fmt.Errorf("%w: no jenkins jobs or kafka topic configured", errors.ErrConfigInvalid)
	}

	locked, err := a.lock.TryLock()
	if err != nil {
		return errors.Wrap(err, "acquire lock")
	}
	if !locked {
		return fmt.Errorf("%w: lock %s is held", errors.ErrAlreadyRunning, a.lock.Path())
	}
	defer func() {
		if err := a.lock.Unlock(); err != nil {
			a.logger.Error(context.Background(), "failed to release lock", "error", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	if a.poller != nil {
		if err := a.scheduleJob(gctx); err != nil {
			return err
		}
		g.Go(func() error {
			a.logger.Info(gctx, "running first poll immediately")
			a.poller.Poll(gctx)

			a.logger.Info(gctx, "starting scheduler", "cron", a.schedule)
			a.cron.Start()

			<-gctx.Done()
			stopCtx := a.cron.Stop()
			select {
			case <-stopCtx.Done():
			case <-time.After(5 * time.Second):
			}
			a.logger.Info(context.Background(), "scheduler stopped")
			return nil
		})
	}

	if a.consumer != nil {
		g.Go(func() error {
			a.logger.Info(gctx, "starting build event consumer")
			if err := a.consumer.Run(gctx); err != nil {
				return errors.Wrap(err, "build event consumer")
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		a.poller.Poll(ctx)
	})
	if err != nil {
		return errors.Wrapf(err, "parse poll schedule %q", a.schedule)
	}
	return nil
}
