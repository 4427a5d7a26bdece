// Package dispatch runs the at-point menu.
//
// A Dispatcher has two entry points. Interactive composes the menu for the
// thing at point, shows it through a Prompter and returns a Session that
// consumes key events: prefix keys descend into submaps, a bound action is
// invoked, and the session ends unless that action is sticky. Default
// composes the same menu and directly invokes whatever is bound to the
// default trigger (RET unless configured otherwise), doing nothing when
// there is no such binding.
//
// Every dispatch gets a unique id that is attached to its log lines.
package dispatch
