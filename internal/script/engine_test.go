package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

const shout = `
atpoint.action{
	name = "identifier.shout",
	args = 1,
	description = "Upcase the identifier in place",
	fn = function(name)
		local text = atpoint.buffer.text()
		local p = atpoint.buffer.point()
		local s, e = string.find(text, name, 1, true)
		atpoint.buffer.replace(s - 1, e, string.upper(name))
		atpoint.buffer.message("shouted " .. name .. " at " .. p)
	end,
}
atpoint.sticky("identifier.shout")
`

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(opts...)
	t.Cleanup(func() { e.Close() })
	return e
}

func invoke(t *testing.T, e *Engine, name string, buf *host.Buffer, args ...any) error {
	t.Helper()
	for _, a := range e.Actions() {
		if a.Name() == name {
			return a.Invoke(host.WithEnv(context.Background(), buf), args...)
		}
	}
	t.Fatalf("no action %q", name)
	return nil
}

func TestLoadDefinesActions(t *testing.T) {
	e := newEngine(t)
	if err := e.LoadString(context.Background(), "shout.lua", shout); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	actions := e.Actions()
	if len(actions) != 1 {
		t.Fatalf("Actions() = %v, want one", actions)
	}
	a := actions[0]
	if a.Name() != "identifier.shout" || a.Arity() != 1 || a.Description() != "Upcase the identifier in place" {
		t.Errorf("action = %s/%d/%q", a.Name(), a.Arity(), a.Description())
	}
	if diff := cmp.Diff([]string{"identifier.shout"}, e.Sticky()); diff != "" {
		t.Errorf("Sticky() mismatch (-want +got):\n%s", diff)
	}

	buf := host.NewBuffer("", "x := value + 1", host.WithPoint(7))
	if err := invoke(t, e, "identifier.shout", buf, "value"); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if got := buf.Text(); got != "x := VALUE + 1" {
		t.Errorf("Text() = %q", got)
	}
	if got := buf.LastMessage(); got != "shouted value at 7" {
		t.Errorf("LastMessage() = %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shout.lua")
	if err := os.WriteFile(path, []byte(shout), 0o644); err != nil {
		t.Fatal(err)
	}
	e := newEngine(t)
	if err := e.LoadFile(context.Background(), path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(e.Actions()) != 1 {
		t.Errorf("Actions() = %v", e.Actions())
	}

	err := e.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	if err == nil {
		t.Error("LoadFile(missing) succeeded")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "atpoint.action{", "load bad.lua"},
		{"no fn", `atpoint.action{name = "a"}`, "fn must be a function"},
		{"bad args", `atpoint.action{name = "a", args = "x", fn = function() end}`, "args must be 0 or 1"},
		{"arity", `atpoint.action{name = "a", args = 2, fn = function() end}`, "arity 2"},
		{"no name", `atpoint.action{fn = function() end}`, "empty name"},
		{"twice", `
			atpoint.action{name = "a", fn = function() end}
			atpoint.action{name = "a", fn = function() end}`, `action "a" defined twice`},
		{"runtime", `error("boom")`, "boom"},
		{"buffer outside action", `atpoint.buffer.text()`, "only available inside an action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			err := e.LoadString(context.Background(), "bad.lua", tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadString() error = %v, want it to contain %q", err, tt.want)
			}
			if len(e.Actions()) != 0 {
				t.Errorf("failed load kept actions %v", e.Actions())
			}
		})
	}
}

func TestLoadDuplicateAcrossScripts(t *testing.T) {
	e := newEngine(t)
	src := `atpoint.action{name = "a", fn = function() end}`
	if err := e.LoadString(context.Background(), "one.lua", src); err != nil {
		t.Fatal(err)
	}
	err := e.LoadString(context.Background(), "two.lua", src)
	if !errors.Is(err, action.ErrDuplicate) {
		t.Errorf("second LoadString() error = %v, want ErrDuplicate", err)
	}
}

func TestSandbox(t *testing.T) {
	e := newEngine(t)
	src := `
		assert(io == nil, "io")
		assert(os == nil, "os")
		assert(debug == nil, "debug")
		assert(require == nil, "require")
		assert(dofile == nil, "dofile")
		assert(loadstring == nil, "loadstring")
		assert(string.upper("a") == "A")
		assert(math.max(1, 2) == 2)
		assert(table.concat({"a", "b"}) == "ab")
		print("sandbox ok")
	`
	if err := e.LoadString(context.Background(), "sandbox.lua", src); err != nil {
		t.Errorf("LoadString() error = %v", err)
	}
}

func TestTimeout(t *testing.T) {
	e := newEngine(t, WithTimeout(50*time.Millisecond))
	err := e.LoadString(context.Background(), "loop.lua", "while true do end")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("LoadString() error = %v, want ErrTimeout", err)
	}

	src := `atpoint.action{name = "spin", fn = function() while true do end end}`
	if err := e.LoadString(context.Background(), "spin.lua", src); err != nil {
		t.Fatal(err)
	}
	buf := host.NewBuffer("", "text")
	if err := invoke(t, e, "spin", buf); !errors.Is(err, ErrTimeout) {
		t.Errorf("Invoke() error = %v, want ErrTimeout", err)
	}
}

func TestCancelledContext(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.LoadString(ctx, "loop.lua", "while true do end")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadString() error = %v, want context.Canceled", err)
	}
}

func TestActionErrors(t *testing.T) {
	e := newEngine(t)
	src := `
		atpoint.action{name = "fail", fn = function() error("nope") end}
		atpoint.action{name = "range", fn = function() atpoint.buffer.replace(0, 99, "") end}
	`
	if err := e.LoadString(context.Background(), "errs.lua", src); err != nil {
		t.Fatal(err)
	}
	buf := host.NewBuffer("", "short")

	if err := invoke(t, e, "fail", buf); err == nil || !strings.Contains(err.Error(), "script: fail") || !strings.Contains(err.Error(), "nope") {
		t.Errorf("fail error = %v", err)
	}
	if err := invoke(t, e, "range", buf); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("range error = %v", err)
	}

	for _, a := range e.Actions() {
		if a.Name() == "fail" {
			if err := a.Invoke(context.Background()); !errors.Is(err, host.ErrNoEnv) {
				t.Errorf("Invoke() without env error = %v, want ErrNoEnv", err)
			}
		}
	}
}

func TestArguments(t *testing.T) {
	e := newEngine(t)
	src := `
		atpoint.action{name = "show", args = 1, fn = function(v)
			if type(v) == "table" then
				atpoint.buffer.message(v.start .. "-" .. v["end"] .. ":" .. v.text .. ":" .. tostring(v.value))
			else
				atpoint.buffer.message(tostring(v))
			end
		end}
	`
	if err := e.LoadString(context.Background(), "show.lua", src); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"string", "https://go.dev", "https://go.dev"},
		{"span", host.Span{Start: 2, End: 5}, "2-5:llo:nil"},
		{"number", host.Number{Span: host.Span{Start: 0, End: 4}, Value: 255, Base: 16}, "0-4:0xff:255"},
		{"int", 7, "7"},
		{"nil", nil, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := host.NewBuffer("", "hello world")
			if err := invoke(t, e, "show", buf, tt.arg); err != nil {
				t.Fatal(err)
			}
			if got := buf.LastMessage(); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBufferAPI(t *testing.T) {
	e := newEngine(t)
	src := `
		atpoint.action{name = "inspect", fn = function()
			local b = atpoint.buffer
			local s, e = b.region()
			b.message(b.mode() .. " " .. b.path() .. " " .. s .. " " .. e)
			b.copy(string.sub(b.text(), s + 1, e))
			b.open("url", "https://example.com")
			b.set_point(0)
		end}
	`
	if err := e.LoadString(context.Background(), "inspect.lua", src); err != nil {
		t.Fatal(err)
	}
	buf := host.NewBuffer("notes.org", "alpha beta", host.WithPoint(10), host.WithRegion(6))
	if err := invoke(t, e, "inspect", buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.LastMessage(); got != "org notes.org 6 10" {
		t.Errorf("message = %q", got)
	}
	if got, _ := buf.Clipboard(); got != "beta" {
		t.Errorf("Clipboard() = %q, want beta", got)
	}
	if got := buf.Opened(); len(got) != 1 || got[0].Target != "https://example.com" {
		t.Errorf("Opened() = %v", got)
	}
	if buf.Point() != 0 {
		t.Errorf("Point() = %d, want 0", buf.Point())
	}
}

func TestRegister(t *testing.T) {
	e := newEngine(t)
	if err := e.LoadString(context.Background(), "shout.lua", shout); err != nil {
		t.Fatal(err)
	}
	reg := action.NewRegistry()
	if err := e.Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !reg.IsSticky("identifier.shout") {
		t.Error("identifier.shout is not sticky")
	}
	if err := e.Register(reg); !errors.Is(err, action.ErrDuplicate) {
		t.Errorf("second Register() error = %v, want ErrDuplicate", err)
	}

	bad := newEngine(t)
	if err := bad.LoadString(context.Background(), "s.lua", `atpoint.sticky("nothing")`); err != nil {
		t.Fatal(err)
	}
	if err := bad.Register(action.NewRegistry()); !errors.Is(err, action.ErrUnknownAction) {
		t.Errorf("Register() error = %v, want ErrUnknownAction", err)
	}
}

func TestClosed(t *testing.T) {
	e := New()
	if err := e.LoadString(context.Background(), "shout.lua", shout); err != nil {
		t.Fatal(err)
	}
	a := e.Actions()[0]
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := e.LoadString(context.Background(), "x", ""); !errors.Is(err, ErrClosed) {
		t.Errorf("LoadString() error = %v, want ErrClosed", err)
	}
	ctx := host.WithEnv(context.Background(), host.NewBuffer("", "value"))
	if err := a.Invoke(ctx, "value"); !errors.Is(err, ErrClosed) {
		t.Errorf("Invoke() error = %v, want ErrClosed", err)
	}
}
