// Package table holds an ordered sequence of raw CSV text lines and
// provides cell lookup, line-oriented serialization, and field escaping.
// The package does no I/O; callers feed it lines already split on line
// boundaries and decide where serialized output goes.
package table
