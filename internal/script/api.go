package script

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/atpoint/internal/action"
	"github.com/dshills/atpoint/internal/host"
)

// installAPI sets up the atpoint global and replaces print.
func (e *Engine) installAPI() {
	L := e.L

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"action": e.luaAction,
		"sticky": e.luaSticky,
	})
	buffer := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"text":      e.bufText,
		"point":     e.bufPoint,
		"set_point": e.bufSetPoint,
		"region":    e.bufRegion,
		"mode":      e.bufMode,
		"path":      e.bufPath,
		"replace":   e.bufReplace,
		"message":   e.bufMessage,
		"copy":      e.bufCopy,
		"open":      e.bufOpen,
	})
	L.SetField(mod, "buffer", buffer)
	L.SetGlobal("atpoint", mod)

	L.SetGlobal("print", L.NewFunction(e.luaPrint))
}

// luaAction implements atpoint.action{name, args, description, fn}.
func (e *Engine) luaAction(L *lua.LState) int {
	def := L.CheckTable(1)

	name := lua.LVAsString(def.RawGetString("name"))
	desc := lua.LVAsString(def.RawGetString("description"))
	arity := 0
	switch v := def.RawGetString("args").(type) {
	case lua.LNumber:
		arity = int(v)
	case *lua.LNilType:
	default:
		L.ArgError(1, "args must be 0 or 1")
	}
	fn, ok := def.RawGetString("fn").(*lua.LFunction)
	if !ok {
		L.ArgError(1, "fn must be a function")
	}

	for _, a := range e.pending {
		if a.Name() == name {
			L.RaiseError("action %q defined twice", name)
		}
	}
	a, err := action.New(name, desc, arity, e.invoker(name, fn))
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	e.pending = append(e.pending, a)
	return 0
}

// luaSticky implements atpoint.sticky(name, ...).
func (e *Engine) luaSticky(L *lua.LState) int {
	for i := 1; i <= L.GetTop(); i++ {
		e.pendingSticky = append(e.pendingSticky, L.CheckString(i))
	}
	return 0
}

func (e *Engine) luaPrint(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	e.logger.Info(strings.Join(parts, "\t"), zap.String("script", e.script))
	return 0
}

// checkEnv returns the env of the running action or raises a Lua error.
func (e *Engine) checkEnv(L *lua.LState) host.Env {
	if e.env == nil {
		L.RaiseError("atpoint.buffer is only available inside an action")
	}
	return e.env
}

func (e *Engine) bufText(L *lua.LState) int {
	L.Push(lua.LString(e.checkEnv(L).Text()))
	return 1
}

func (e *Engine) bufPoint(L *lua.LState) int {
	L.Push(lua.LNumber(e.checkEnv(L).Point()))
	return 1
}

func (e *Engine) bufSetPoint(L *lua.LState) int {
	e.checkEnv(L).SetPoint(L.CheckInt(1))
	return 0
}

func (e *Engine) bufRegion(L *lua.LState) int {
	span, ok := e.checkEnv(L).Region()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(span.Start))
	L.Push(lua.LNumber(span.End))
	return 2
}

func (e *Engine) bufMode(L *lua.LState) int {
	L.Push(lua.LString(e.checkEnv(L).Mode()))
	return 1
}

func (e *Engine) bufPath(L *lua.LState) int {
	L.Push(lua.LString(e.checkEnv(L).Path()))
	return 1
}

func (e *Engine) bufReplace(L *lua.LState) int {
	env := e.checkEnv(L)
	if err := env.Replace(L.CheckInt(1), L.CheckInt(2), L.CheckString(3)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

func (e *Engine) bufMessage(L *lua.LState) int {
	e.checkEnv(L).Message("%s", L.CheckString(1))
	return 0
}

func (e *Engine) bufCopy(L *lua.LState) int {
	e.checkEnv(L).Copy(L.CheckString(1))
	return 0
}

func (e *Engine) bufOpen(L *lua.LState) int {
	e.checkEnv(L).Open(L.CheckString(1), L.CheckString(2))
	return 0
}

// toLua converts an action argument. Spans and values carrying one become
// tables with start, end and text fields.
func (e *Engine) toLua(v any) lua.LValue {
	L := e.L
	span := func(s host.Span, text string) *lua.LTable {
		t := L.NewTable()
		t.RawSetString("start", lua.LNumber(s.Start))
		t.RawSetString("end", lua.LNumber(s.End))
		t.RawSetString("text", lua.LString(text))
		return t
	}

	switch v := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(v)
	case bool:
		return lua.LBool(v)
	case int:
		return lua.LNumber(v)
	case int64:
		return lua.LNumber(v)
	case float64:
		return lua.LNumber(v)
	case host.Span:
		return span(v, e.spanText(v))
	case host.Number:
		t := span(v.Span, v.Format())
		t.RawSetString("value", lua.LNumber(v.Value))
		t.RawSetString("base", lua.LNumber(v.Base))
		return t
	case host.Timestamp:
		t := span(v.Span, v.Format())
		t.RawSetString("date", lua.LString(v.Time.Format("2006-01-02")))
		return t
	case fmt.Stringer:
		return lua.LString(v.String())
	}
	return lua.LString(fmt.Sprint(v))
}

func (e *Engine) spanText(s host.Span) string {
	if e.env == nil {
		return ""
	}
	text := e.env.Text()
	if s.Start < 0 || s.End > len(text) || s.Start > s.End {
		return ""
	}
	return s.In(text)
}
