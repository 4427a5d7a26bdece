package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/logging"
)

// DefaultDebounce coalesces the bursts of events editors produce when
// saving.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file when it changes. The file's
// directory is watched so that saves which replace the file are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fsw      *fsnotify.Watcher

	configs chan *Config
	errors  chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(l *zap.Logger) WatchOption {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher starts watching the configuration file at path.
func NewWatcher(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := FormatForPath(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		fsw:      fsw,
		configs:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = logging.WithComponent(w.logger, "config")

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Configs delivers each successfully reloaded configuration. A slow
// reader only sees the latest one.
func (w *Watcher) Configs() <-chan *Config { return w.configs }

// Errors delivers reload failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("config changed", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", zap.Error(err))
		w.sendError(err)
		return
	}
	if cfg.Path == "" {
		// Removed between the event and the reload; wait for it to return.
		return
	}
	w.logger.Info("config reloaded", zap.String("path", w.path))
	w.sendConfig(cfg)
}

// sendConfig replaces any undelivered configuration with cfg.
func (w *Watcher) sendConfig(cfg *Config) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case <-w.configs:
	default:
	}
	w.configs <- cfg
}

func (w *Watcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}
