// Package stackexchange implements the Stack Exchange API client used by
// the collector.
//
// The client covers the two endpoints the pipeline needs: tag-filtered
// question listings (sorted by creation date descending, paginated) and
// per-question answer listings (sorted by vote score descending). Both use
// custom API filters so responses include question and answer bodies.
//
// Errors carry a type classification (network, rate limit, auth, parsing,
// not found, server error) derived from either the HTTP status or the
// API's JSON error envelope. The client itself never retries or swallows
// errors; the collector decides how to degrade.
package stackexchange
