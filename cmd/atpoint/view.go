package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/atpoint/internal/app"
	"github.com/dshills/atpoint/internal/config"
	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/ui"
)

func newViewCmd(o *options) *cobra.Command {
	var (
		pos     positionFlags
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Browse a file and open the menu at point",
		Long: `Show FILE full screen. Arrows move point, C-SPC sets the mark, C-.
opens the menu at point, M-RET runs the default action and C-q quits.
Edits stay in memory. The configuration file is reloaded when it changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs := io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logs = f
			}

			term, err := ui.NewTerminal()
			if err != nil {
				return err
			}
			if err := term.Init(); err != nil {
				return err
			}
			defer term.Shutdown()

			panel := ui.NewPanel(term)
			a, err := newApp(cmd.Context(), o, logs, panel)
			if err != nil {
				return err
			}
			defer a.Close()

			buf, err := openOrCreate(a, args[0], pos.position())
			if err != nil {
				return err
			}
			viewer := ui.NewViewer(term, panel, buf, a.Dispatcher(), a.Logger())
			return runViewer(cmd.Context(), a, viewer)
		},
	}
	pos.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}

// runViewer runs the viewer and, when a configuration file is in use, a
// watcher feeding reloads into it. Both stop when the viewer quits.
func runViewer(ctx context.Context, a *app.Application, viewer *ui.Viewer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return viewer.Run(ctx)
	})

	if path := a.Config().Path; path != "" {
		w, err := config.NewWatcher(path, config.WithLogger(a.Logger()))
		if err != nil {
			a.Logger().Warn("configuration will not reload", zap.Error(err))
		} else {
			defer w.Close()
			g.Go(func() error {
				err := a.Watch(ctx, w, func(d *dispatch.Dispatcher, err error) {
					if err != nil {
						viewer.SetDispatcher(d, "Configuration not reloaded: "+err.Error())
						return
					}
					viewer.SetDispatcher(d, "Configuration reloaded")
				})
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			})
		}
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
