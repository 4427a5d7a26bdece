// Package compose builds the menu for the thing at point.
//
// The Composer runs every detector in registry order, keeps all matches,
// and merges their action maps with earlier detectors taking precedence.
// Two maps come out of each composition: Raw, the matched maps merged as
// they are, and Applied, where each target's value has been bound into
// its map's actions first. Applied is what the dispatcher invokes.
//
// A detector that fails or panics is logged and skipped; the remaining
// detectors still run.
package compose
