// Package ui is the terminal front end.
//
// Terminal owns a tcell screen and pumps its events onto a channel.
// KeySource turns those events into key.Events for dispatch sessions.
// Panel is a dispatch.Prompter that draws the transient menu at the
// bottom of the screen. Viewer ties them together into a small read-only
// buffer view where the menu can be opened at point:
//
//	arrows, C-a, C-e   move point
//	C-SPC              set or clear the mark
//	C-.                open the menu at point
//	M-RET              run the default action
//	C-q                quit
//
// The listing helpers render menus and kind tables as plain or styled
// text with lipgloss for non-interactive output.
package ui
