package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/atpoint/internal/compose"
	"github.com/dshills/atpoint/internal/dispatch"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/ui"
)

func newMenuCmd(o *options) *cobra.Command {
	var pos positionFlags
	cmd := &cobra.Command{
		Use:   "menu FILE",
		Short: "Print the targets and actions at a position",
		Long: `Print the things found at point and the composed action menu.

Example:
  atpoint menu notes.org --line 12 --col 5
  echo "see https://go.dev" | atpoint menu - --point 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), o, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			buf, err := openBuffer(cmd, a, args[0], pos.position())
			if err != nil {
				return err
			}
			menu, err := a.Dispatcher().Compose(cmd.Context(), buf)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), ui.FormatMenu(menu, listingStyles(cmd.OutOrStdout())))
			return err
		},
	}
	pos.register(cmd)
	return cmd
}

func newActCmd(o *options) *cobra.Command {
	var (
		pos   positionFlags
		keys  string
		write bool
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "act FILE",
		Short: "Open the menu at a position and type keys into it",
		Long: `Open the interactive menu at point, feed it --keys and print the
resulting text, or write it back with --write. Sticky actions repeat
until a key outside their map, such as C-g, closes the menu.

Example:
  atpoint act plan.org --line 3 --keys "> >"
  atpoint act main.go --point 40 --keys "C-g"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := key.ParseSequence(keys)
			if err != nil {
				return fmt.Errorf("--keys: %w", err)
			}

			var prompter dispatch.Prompter
			if trace {
				prompter = dispatch.PrompterFuncs{
					ShowFunc: func(p dispatch.Prompt) { traceMenu(cmd.ErrOrStderr(), p) },
				}
			}
			a, err := newApp(cmd.Context(), o, cmd.ErrOrStderr(), prompter)
			if err != nil {
				return err
			}
			defer a.Close()

			buf, err := openBuffer(cmd, a, args[0], pos.position())
			if err != nil {
				return err
			}
			sess, err := a.Dispatcher().Interactive(cmd.Context(), buf)
			if err != nil {
				return err
			}
			if sess.Menu().Empty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "nothing at point")
			}
			runErr := sess.Run(cmd.Context(), dispatch.NewSequenceSource(seq))
			printMessages(cmd.ErrOrStderr(), buf)
			if runErr != nil {
				return runErr
			}
			return writeResult(cmd, a, buf, write)
		},
	}
	pos.register(cmd)
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "keys to type, e.g. \"+ + C-g\"")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().BoolVar(&trace, "trace", false, "print each menu shown to standard error")
	return cmd
}

// traceMenu prints one prompt as "menu [prefix]: key label, ...".
func traceMenu(w io.Writer, p dispatch.Prompt) {
	var items []string
	for _, r := range compose.Rows(p.Map) {
		items = append(items, r.Key+" "+r.Label)
	}
	prefix := ""
	if !p.Prefix.IsEmpty() {
		prefix = " " + p.Prefix.String()
	}
	fmt.Fprintf(w, "menu%s: %s\n", prefix, strings.Join(items, ", "))
}

func newDefaultCmd(o *options) *cobra.Command {
	var (
		pos   positionFlags
		write bool
	)
	cmd := &cobra.Command{
		Use:   "default FILE",
		Short: "Run the default action at a position",
		Long: `Run the action bound to the default trigger (RET unless configured)
for the highest-precedence thing at point that has one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), o, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			buf, err := openBuffer(cmd, a, args[0], pos.position())
			if err != nil {
				return err
			}
			ok, err := a.Dispatcher().Default(cmd.Context(), buf)
			printMessages(cmd.ErrOrStderr(), buf)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "no %s action at point\n", a.Dispatcher().DefaultTrigger())
				return errSilent
			}
			return writeResult(cmd, a, buf, write)
		},
	}
	pos.register(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func newKindsCmd(o *options) *cobra.Command {
	var showSticky bool
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the detectors in precedence order and their keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), o, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			set := a.Kinds()
			table := ui.Table{Title: "Detectors", Headers: []string{"#", "KIND", "KEYS"}}
			for i, kind := range set.Detectors.Kinds() {
				var labels []string
				if m, ok := set.Map(kind); ok {
					for _, r := range compose.Rows(m) {
						labels = append(labels, r.Key+" "+r.Label)
					}
				}
				table.AddRow(strconv.Itoa(i+1), kind.String(), strings.Join(labels, ", "))
			}
			out := table.Render(listingStyles(cmd.OutOrStdout()))

			if showSticky {
				sticky := ui.Table{Title: "Sticky actions", Headers: []string{"ACTION"}}
				for _, name := range set.Actions.Sticky() {
					sticky.AddRow(name)
				}
				out += "\n" + sticky.Render(listingStyles(cmd.OutOrStdout()))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&showSticky, "sticky", false, "also list the sticky actions")
	return cmd
}
