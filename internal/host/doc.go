// Package host is the editor side of the at-point engine.
//
// Env is what detectors probe and what actions change: the buffer text,
// point, mark, major mode and a language analyzer. Buffer is the
// in-memory Env used by the command line tool and the tests. The probe
// functions (SymbolAt, URLAt, TimestampAt, TableAt, ...) are pure
// functions of an Env that find the thing under point.
package host
