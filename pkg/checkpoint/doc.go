// Package checkpoint writes periodic cumulative snapshots of in-progress
// collection results.
//
// The collector checkpoints after every tenth question and unconditionally
// after the last one. Each checkpoint file holds the complete accumulated
// result so far, written atomically, so an interrupted run always leaves a
// well-formed recovery point on disk. A restarted run starts from scratch;
// checkpoints are never read back.
package checkpoint
