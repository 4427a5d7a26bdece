package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/atpoint/internal/input/key"
	"github.com/dshills/atpoint/internal/logging"
	"github.com/dshills/atpoint/internal/suggest"
	"github.com/dshills/atpoint/internal/target"
)

// Known lists the names a configuration may refer to.
type Known struct {
	Actions []string
	Maps    []string
}

// Validate checks every setting against known and returns all problems
// joined, each a *ValidationError.
func (c *Config) Validate(known Known) error {
	var errs []error
	add := func(path string, value any, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		add("log_level", c.LogLevel, "want debug, info, warn or error")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		add("log_format", c.LogFormat, "want console or json")
	}
	if _, err := key.Parse(c.DefaultTrigger); err != nil {
		add("default_trigger", c.DefaultTrigger, "%v", err)
	}

	seen := make(map[target.Kind]bool)
	for i, name := range c.Detectors {
		path := fmt.Sprintf("detectors[%d]", i)
		kind, err := target.ParseKind(name)
		if err != nil {
			add(path, name, "%v", err)
			continue
		}
		if seen[kind] {
			add(path, name, "listed twice")
		}
		seen[kind] = true
	}

	for i, name := range c.Sticky {
		if !slices.Contains(known.Actions, name) {
			add(fmt.Sprintf("sticky[%d]", i), name, "unknown action%s", suggest.Hint(name, known.Actions))
		}
	}

	for _, b := range c.Bindings() {
		path := fmt.Sprintf("keys.%s", b.Map)
		if !slices.Contains(known.Maps, b.Map) {
			add(path, b.Map, "unknown map%s", suggest.Hint(b.Map, known.Maps))
			continue
		}
		path += "." + b.Spec
		if _, err := key.ParseSequence(b.Spec); err != nil {
			add(path, b.Spec, "%v", err)
		}
		if !slices.Contains(known.Actions, b.Action) {
			add(path, b.Action, "unknown action%s", suggest.Hint(b.Action, known.Actions))
		}
	}

	return errors.Join(errs...)
}

// DetectorKinds returns the configured detector kinds. It assumes
// Validate passed.
func (c *Config) DetectorKinds() ([]target.Kind, error) {
	kinds := make([]target.Kind, 0, len(c.Detectors))
	for _, name := range c.Detectors {
		k, err := target.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
