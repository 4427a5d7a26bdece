// Package analysis answers symbol and syntax questions about a buffer.
//
// A Service parses buffer text with tree-sitter and produces a Result: the
// symbol table (functions and variables with their definitions), every
// reference to each name, and syntax diagnostics taken from error and
// missing nodes. Results are cached per path and revision, and concurrent
// requests for the same revision share one parse.
package analysis
