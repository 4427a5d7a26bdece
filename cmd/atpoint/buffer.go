package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/atpoint/internal/app"
	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/ui"
)

// positionFlags place point and the mark in the buffer a command works on.
type positionFlags struct {
	point    int
	line     int
	col      int
	mark     int
	mode     string
	readOnly bool
}

func (p *positionFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&p.point, "point", "p", 0, "point as a byte offset")
	f.IntVarP(&p.line, "line", "l", 0, "point line (one-based); overrides --point")
	f.IntVar(&p.col, "col", 1, "point column (one-based byte column)")
	f.IntVarP(&p.mark, "mark", "m", app.NoMark, "activate the region from this byte offset to point")
	f.StringVar(&p.mode, "mode", "", "buffer mode (default: from the file extension)")
	f.BoolVar(&p.readOnly, "read-only", false, "reject edits")
}

func (p *positionFlags) position() app.Position {
	return app.Position{
		Point:    p.point,
		Line:     p.line,
		Col:      p.col,
		Mark:     p.mark,
		Mode:     p.mode,
		ReadOnly: p.readOnly,
	}
}

// newApp builds the application from the persistent flags.
func newApp(ctx context.Context, o *options, logs io.Writer, prompter dispatch.Prompter) (*app.Application, error) {
	return app.New(ctx, app.Options{
		ConfigPath: o.configPath,
		LogLevel:   o.logLevel,
		LogOutput:  logs,
		Prompter:   prompter,
	})
}

// openBuffer reads path, or standard input when path is "-".
func openBuffer(cmd *cobra.Command, a *app.Application, path string, pos app.Position) (*host.Buffer, error) {
	if path != "-" {
		return a.OpenBuffer(path, pos)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	return a.NewBuffer("", string(data), pos)
}

// openOrCreate opens path, starting an empty buffer when it does not exist.
func openOrCreate(a *app.Application, path string, pos app.Position) (*host.Buffer, error) {
	buf, err := a.OpenBuffer(path, pos)
	if errors.Is(err, fs.ErrNotExist) {
		return a.NewBuffer(path, "", pos)
	}
	return buf, err
}

// printMessages writes the messages actions left in buf.
func printMessages(w io.Writer, buf *host.Buffer) {
	for _, msg := range buf.Messages() {
		fmt.Fprintln(w, msg)
	}
}

// writeResult writes the buffer back to its file, or its text to w.
func writeResult(cmd *cobra.Command, a *app.Application, buf *host.Buffer, write bool) error {
	if write && buf.Path() != "" {
		return a.SaveBuffer(buf)
	}
	text := buf.Text()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(cmd.OutOrStdout(), text)
	return err
}

// listingStyles styles output only for terminals.
func listingStyles(w io.Writer) ui.Styles {
	f, ok := w.(*os.File)
	return ui.NewStyles(ok && term.IsTerminal(int(f.Fd())))
}
