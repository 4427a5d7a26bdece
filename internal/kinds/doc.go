// Package kinds provides the built-in target kinds: one detector, one
// action map and the host actions behind it for each of region,
// table-cell, heading, timestamp, diagnostic, url, email, file, number,
// function, variable and identifier.
//
// The maps for url, email, file, timestamp, number and identifier share
// the "thing" parent map, and function and variable reach the shared
// "xref" map through a named entry. NewSet wires everything into fresh
// registries; Bind extends the maps with user bindings.
package kinds
