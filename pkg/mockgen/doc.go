// Package mockgen generates synthetic question and answer records for
// offline development and testing.
//
// Generated records are structurally identical to live Stack Exchange
// responses: the same field set, plausible scores and timestamps, and a
// mandatory base tag on every question. The random source is injected via
// a seed so tests can assert exact output.
package mockgen
