package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/config"
	"github.com/dshills/atpoint/internal/dispatch"
)

// Reload rebuilds the registries and the dispatcher from cfg. When the
// new configuration fails, the running one stays in effect and the error
// is returned.
func (app *Application) Reload(ctx context.Context, cfg *config.Config) error {
	app.mu.RLock()
	closed := app.closed
	app.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	c, err := newBootstrapper(app, cfg).bootstrap(ctx)
	if err != nil {
		app.logger.Warn("reload failed, keeping previous configuration", zap.Error(err))
		return err
	}

	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		_ = c.close()
		return ErrClosed
	}
	old := app.current
	app.current = c
	app.config = cfg
	app.mu.Unlock()

	if err := old.close(); err != nil {
		app.logger.Warn("closing previous scripts", zap.Error(err))
	}
	app.logger.Info("configuration applied", zap.String("path", cfg.Path))
	return nil
}

// Watch applies every configuration w delivers until ctx ends. notify,
// when non-nil, is called after each attempt with the dispatcher now in
// effect and the error of the attempt, if any.
func (app *Application) Watch(ctx context.Context, w *config.Watcher, notify func(*dispatch.Dispatcher, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cfg := <-w.Configs():
			err := app.Reload(ctx, cfg)
			if errors.Is(err, ErrClosed) {
				return err
			}
			if notify != nil {
				notify(app.Dispatcher(), err)
			}

		case err := <-w.Errors():
			app.logger.Warn("configuration watch", zap.Error(err))
			if notify != nil {
				notify(app.Dispatcher(), err)
			}
		}
	}
}

// Close releases the script engine. It is safe to call more than once.
func (app *Application) Close() error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return nil
	}
	app.closed = true
	c := app.current
	app.mu.Unlock()

	app.logger.Debug("closing", zap.Uint64("sessions", app.stats.Snapshot().Sessions))
	err := c.close()
	_ = app.logger.Sync()
	return err
}
