// Package action defines the operations a menu can invoke.
//
// An Action is a named host operation taking zero or one argument. Actions
// are registered once in a Registry and referred to by name everywhere
// else, so two bindings of the same action are the same operation. The
// registry also owns the sticky marker set: invoking a sticky action from
// the menu leaves the menu open for another pick.
//
// Bind implements partial application. The menu engine binds the value of
// the detected target into every action of that target's map, so that when
// the user picks an action the target arrives as its first argument.
package action
