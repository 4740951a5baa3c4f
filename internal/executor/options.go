package executor

import "time"

// Options configures one Executor. Zero values are meaningful: Parallelism
// 0 means unbounded (spec.md §4.5 default), PerObjectTimeout/DeployTimeout
// 0 means no deadline, ReadinessPoll 0 falls back to defaultReadinessPoll.
type Options struct {
	Parallelism      int
	PerObjectTimeout time.Duration
	DeployTimeout    time.Duration
	MaxAttempts      int
	ReadinessPoll    time.Duration
}

const defaultReadinessPoll = 2 * time.Second

func (o Options) readinessPoll() time.Duration {
	if o.ReadinessPoll > 0 {
		return o.ReadinessPoll
	}
	return defaultReadinessPoll
}

func (o Options) maxAttempts() int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return 1
}
