package kinds

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/analysis"
	"github.com/dshills/atpoint/internal/host"
)

// valueAction wraps fn as a one-argument action taking a T.
func valueAction[T any](name, description string, fn func(env host.Env, v T) error) *action.Action {
	return action.MustNew(name, description, 1, func(ctx context.Context, args ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		v, err := valueArg[T](name, args)
		if err != nil {
			return err
		}
		return fn(env, v)
	})
}

// browsable adds a scheme to bare www addresses.
func browsable(u string) string {
	if strings.HasPrefix(u, "www.") {
		return "https://" + u
	}
	return u
}

// resolvePath makes p absolute relative to the buffer's directory.
func resolvePath(env host.Env, p string) string {
	if strings.HasPrefix(p, "~") || filepath.IsAbs(p) || env.Path() == "" {
		return p
	}
	return filepath.Join(filepath.Dir(env.Path()), p)
}

func thingActions() []*action.Action {
	return []*action.Action{
		action.MustNew(ActionThingCopy, "Copy", 1, func(ctx context.Context, args ...any) error {
			env, err := envFrom(ctx)
			if err != nil {
				return err
			}
			s := display(args[0])
			env.Copy(s)
			env.Message("Copied %q", s)
			return nil
		}),
		valueAction(ActionURLBrowse, "Open in browser", func(env host.Env, u string) error {
			env.Open("url", browsable(u))
			return nil
		}),
		valueAction(ActionURLHost, "Show host", func(env host.Env, u string) error {
			parsed, err := url.Parse(browsable(u))
			if err != nil {
				return fmt.Errorf("kinds: %w", err)
			}
			env.Message("%s", parsed.Hostname())
			return nil
		}),
		valueAction(ActionEmailCompose, "Compose mail", func(env host.Env, addr string) error {
			env.Open("mail", strings.TrimPrefix(addr, "mailto:"))
			return nil
		}),
		valueAction(ActionFileOpen, "Open file", func(env host.Env, p string) error {
			env.Open("file", resolvePath(env, p))
			return nil
		}),
		valueAction(ActionDiagnosticDescribe, "Describe diagnostic", func(env host.Env, d analysis.Diagnostic) error {
			env.Message("%s", d)
			return nil
		}),
		valueAction(ActionDiagnosticCopy, "Copy message", func(env host.Env, d analysis.Diagnostic) error {
			env.Copy(d.Message)
			return nil
		}),
	}
}
