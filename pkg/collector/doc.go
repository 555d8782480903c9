// Package collector orchestrates the question collection pipeline.
//
// A run is strictly sequential: fetch the question listing, then for each
// question in fetch order fetch its answers, merge them into the record,
// and append to the result. After every tenth question and after the last
// one the accumulated result is checkpointed to disk. Output order always
// equals fetch order.
//
// Failures are isolated: a failed question fetch ends the run with an
// empty result, and a failed answer fetch leaves only that question with
// empty answers. Neither surfaces as an error from Collect. Only
// checkpoint I/O failures abort the pipeline.
package collector
