// Package actionmap provides keyed action tables for the at-point menu.
//
// A Map binds triggers (key events) to entries. An entry is one of:
//
//   - a leaf: an action.Invoker run when the trigger is pressed
//   - a submap: a nested Map reached by a prefix key
//   - a named reference: the name of a Map held by a Registry
//
// Maps keep insertion order, which is the order the menu displays. A map
// may have a parent whose bindings apply wherever the child does not bind
// the same trigger. Effective flattens the parent chain into one table.
//
// Transform binds a target value into every action of a map, producing a
// new map; Compose merges several maps into one with first-match-wins
// precedence. Neither mutates its inputs.
package actionmap
