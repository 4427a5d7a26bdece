package compose

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/actionmap"
	"github.com/dshills/atpoint/internal/host"
	"github.com/dshills/atpoint/internal/logging"
	"github.com/dshills/atpoint/internal/target"
)

// Menu is one composition result.
type Menu struct {
	// Targets are the matches in precedence order.
	Targets []*target.Target

	// Applied is the merged map with target values bound in.
	Applied *actionmap.Map

	// Raw is the merged map of the targets' maps as they are.
	Raw *actionmap.Map
}

// Empty reports whether nothing was detected.
func (m *Menu) Empty() bool {
	return len(m.Targets) == 0
}

// Kinds returns the matched kinds in precedence order.
func (m *Menu) Kinds() []target.Kind {
	out := make([]target.Kind, len(m.Targets))
	for i, t := range m.Targets {
		out[i] = t.Kind
	}
	return out
}

// Composer builds menus from a detector registry.
type Composer struct {
	detectors *target.Registry
	maps      *actionmap.Registry
	logger    *zap.Logger
}

// New creates a composer. maps resolves named entries and may be nil when
// no map uses them. A nil logger disables logging.
func New(detectors *target.Registry, maps *actionmap.Registry, logger *zap.Logger) *Composer {
	return &Composer{
		detectors: detectors,
		maps:      maps,
		logger:    logging.WithComponent(logger, "compose"),
	}
}

// Compose detects the targets at point and merges their maps. With no
// match both maps are empty. Errors come only from malformed maps or a
// cancelled context.
func (c *Composer) Compose(ctx context.Context, env host.Env) (*Menu, error) {
	log := logging.FromContext(ctx, c.logger)

	menu := &Menu{}
	for _, d := range c.detectors.Detectors() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := detect(d, env)
		if err != nil {
			log.Warn("detector failed", zap.Stringer("kind", d.Kind()), zap.Error(err))
			continue
		}
		if t == nil {
			continue
		}
		log.Debug("target detected", zap.Stringer("target", t))
		menu.Targets = append(menu.Targets, t)
	}

	raw := make([]*actionmap.Map, len(menu.Targets))
	applied := make([]*actionmap.Map, len(menu.Targets))
	for i, t := range menu.Targets {
		raw[i] = t.Map
		m, err := actionmap.Transform(t.Map, t.Value, c.maps)
		if err != nil {
			return nil, fmt.Errorf("compose: %s map: %w", t.Kind, err)
		}
		applied[i] = m
	}

	var err error
	if menu.Raw, err = actionmap.Compose(c.maps, raw...); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	if menu.Applied, err = actionmap.Compose(c.maps, applied...); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	return menu, nil
}

// detect runs d, turning a panic into an error.
func detect(d target.Detector, env host.Env) (t *target.Target, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			t, err = nil, fmt.Errorf("%w: %v\n%s", ErrDetectorPanic, r, stack[:n])
		}
	}()

	t, err = d.Detect(env)
	if err == nil && t != nil && t.Map == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, t.Kind)
	}
	return t, err
}
