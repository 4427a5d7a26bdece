// Package script defines actions in Lua.
//
// An Engine owns a sandboxed gopher-lua state with only the base, table,
// string and math libraries. Scripts register actions through the
// atpoint module:
//
//	atpoint.action{
//	    name = "identifier.shout",
//	    args = 1,
//	    description = "Upcase the identifier and exclaim",
//	    fn = function(name)
//	        atpoint.buffer.message(string.upper(name) .. "!")
//	    end,
//	}
//	atpoint.sticky("identifier.shout")
//
// Inside an action, atpoint.buffer reads and edits the buffer the action
// was invoked on. Offsets are zero-based byte offsets, as everywhere in
// the host. Values passed to actions are strings, or tables with start
// and end fields for spans, numbers and timestamps.
//
// Every load and every call runs under a timeout. The state is guarded by
// a mutex, so actions from one engine never run concurrently.
package script
