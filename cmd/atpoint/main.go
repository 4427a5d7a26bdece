// Package main is the entry point for atpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errSilent reports failure through the exit code only; the command has
// already printed why.
var errSilent = errors.New("")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// options are the persistent flags.
type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "atpoint",
		Short: "Act on the thing at point",
		Long: `atpoint finds the things under a buffer position (a region, a URL, a
number, a heading, a symbol, ...) and offers the actions that apply to
them as one key menu.

Positions are byte offsets (--point) or one-based --line and --col.
--mark activates the region between the mark and point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", defaultConfigPath(), "configuration file (TOML or YAML)")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMenuCmd(o),
		newActCmd(o),
		newDefaultCmd(o),
		newKindsCmd(o),
		newViewCmd(o),
	)
	return root
}

// defaultConfigPath returns the per-user configuration file, which need
// not exist.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "atpoint", "config.toml")
}
