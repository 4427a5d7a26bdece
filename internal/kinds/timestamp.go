package kinds

import (
	"context"
	"time"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

// now is replaced in tests.
var now = time.Now

// currentTimestamp re-reads the timestamp that started at the bound
// value's offset, so repeated edits see the previous result.
func currentTimestamp(env host.Env, bound host.Timestamp) (host.Timestamp, error) {
	if err := checkSpan(env, bound.Span); err != nil {
		return host.Timestamp{}, err
	}
	ts, ok := host.TimestampAt(at(env, bound.Span.Start))
	if !ok || ts.Span.Start != bound.Span.Start {
		return host.Timestamp{}, ErrNotFound
	}
	return ts, nil
}

func timestampAction(name, description string, fn func(host.Timestamp) host.Timestamp) *action.Action {
	return action.MustNew(name, description, 1, func(ctx context.Context, args ...any) error {
		env, err := envFrom(ctx)
		if err != nil {
			return err
		}
		bound, err := valueArg[host.Timestamp](name, args)
		if err != nil {
			return err
		}
		ts, err := currentTimestamp(env, bound)
		if err != nil {
			return err
		}
		return replaceSpan(env, ts.Span, fn(ts).Format())
	})
}

// today moves ts to the current date, and to the current minute when it
// carries a time.
func today(ts host.Timestamp) host.Timestamp {
	t := now()
	if !ts.HasTime {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	ts.Time = t
	return ts
}

func timestampActions() []*action.Action {
	return []*action.Action{
		timestampAction(ActionTimestampIncrement, "Next day", func(ts host.Timestamp) host.Timestamp {
			return ts.AddDays(1)
		}),
		timestampAction(ActionTimestampDecrement, "Previous day", func(ts host.Timestamp) host.Timestamp {
			return ts.AddDays(-1)
		}),
		timestampAction(ActionTimestampNow, "Set to today", today),
	}
}
