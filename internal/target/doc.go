// Package target describes the things a menu can act on and the detectors
// that find them.
//
// A Detector recognizes one Kind of target at point and reports it with
// the action map for that kind and the value to bind into the map's
// actions. The Registry holds detectors in precedence order: when two
// matched maps bind the same key, the detector that comes first wins.
package target
