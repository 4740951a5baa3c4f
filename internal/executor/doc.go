// Package executor implements the level executor (spec.md §4.5): it runs
// one deploy invocation's layered plan, level by level, applying each
// level's objects concurrently up to a configured parallelism bound,
// waiting for readiness, retrying transient transport errors, and
// triggering journal rollback on terminal failure.
//
// The per-level worker pool is built on k8s.io/client-go/util/workqueue,
// the same idiom client-go controllers use for bounded fan-out, rather
// than an unbounded goroutine-per-object loop.
package executor
