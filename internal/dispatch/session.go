package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/compose"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/logging"
)

// Outcome describes what a key did to a session.
type Outcome uint8

const (
	// OutcomeClosed means the session was already finished.
	OutcomeClosed Outcome = iota

	// OutcomeUnbound means the key had no binding and the session ended.
	OutcomeUnbound

	// OutcomePrefix means the key descended into a submap.
	OutcomePrefix

	// OutcomeInvoked means an action ran and the session ended.
	OutcomeInvoked

	// OutcomeSticky means a sticky action ran and the session continues
	// at the root of the menu.
	OutcomeSticky
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeClosed:
		return "closed"
	case OutcomeUnbound:
		return "unbound"
	case OutcomePrefix:
		return "prefix"
	case OutcomeInvoked:
		return "invoked"
	case OutcomeSticky:
		return "sticky"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Session is one open interactive menu. It is not safe for concurrent use.
type Session struct {
	id     string
	d      *Dispatcher
	env    host.Env
	menu   *compose.Menu
	logger *zap.Logger

	current *actionmap.Map
	prefix  *key.Sequence
	active  bool
	invoked map[string]bool

	hideOnce sync.Once
}

// ID returns the dispatch id.
func (s *Session) ID() string { return s.id }

// Menu returns the composed menu the session runs against.
func (s *Session) Menu() *compose.Menu { return s.menu }

// Active reports whether the session still accepts keys.
func (s *Session) Active() bool { return s.active }

// Prefix returns a copy of the prefix keys typed so far.
func (s *Session) Prefix() *key.Sequence { return s.prefix.Clone() }

// Feed processes one key. Errors from a sticky action leave the session
// open; every other error closes it.
func (s *Session) Feed(ctx context.Context, ev key.Event) (Outcome, error) {
	if !s.active {
		return OutcomeClosed, ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		s.Cancel()
		return OutcomeClosed, err
	}

	entry, ok := s.current.Lookup(ev)
	if !ok {
		s.logger.Debug("unbound key", zap.Stringer("key", ev), zap.Stringer("prefix", s.prefix))
		s.close()
		return OutcomeUnbound, nil
	}

	switch entry.Kind() {
	case actionmap.EntrySubmap, actionmap.EntryNamed:
		sub, err := s.d.cfg.Maps.Resolve(entry)
		if err != nil {
			s.close()
			return OutcomeClosed, fmt.Errorf("dispatch: %w", err)
		}
		s.prefix.Add(ev)
		s.current = sub
		s.d.cfg.Prompter.Show(s.prompt())
		return OutcomePrefix, nil

	case actionmap.EntryLeaf:
		ctx = logging.IntoContext(ctx, s.logger)
		ctx = host.WithEnv(ctx, s.env)

		inv := entry.Invoker()
		name := inv.Name()
		sticky, err := s.d.invoke(ctx, s.logger, inv, s.invoked[name])
		s.invoked[name] = true
		if !sticky {
			s.close()
			return OutcomeInvoked, err
		}
		s.current = s.menu.Applied
		s.prefix.Clear()
		s.d.cfg.Prompter.Show(s.prompt())
		return OutcomeSticky, err

	default:
		s.close()
		return OutcomeUnbound, nil
	}
}

// Cancel ends the session without running anything. It is safe to call
// more than once.
func (s *Session) Cancel() {
	if s.active {
		s.logger.Debug("menu cancelled")
	}
	s.close()
}

// Run feeds keys from src until the session ends. A source reporting
// io.EOF cancels the session and Run returns nil. Errors from sticky
// actions are logged and the loop continues.
func (s *Session) Run(ctx context.Context, src KeySource) error {
	for s.active {
		ev, err := src.NextKey(ctx)
		if err != nil {
			s.Cancel()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if _, err := s.Feed(ctx, ev); err != nil && !s.active {
			return err
		}
	}
	return nil
}

func (s *Session) prompt() Prompt {
	return Prompt{
		Menu:   s.menu,
		Map:    s.current,
		Prefix: s.prefix.Clone(),
	}
}

func (s *Session) close() {
	s.active = false
	s.hideOnce.Do(func() {
		s.d.cfg.Prompter.Hide()
		s.logger.Debug("menu closed")
	})
}
