package config

import "github.com/giantswarm/piceli/internal/executor"

// ExecutorOptions maps the timeout/concurrency fields of Settings onto
// executor.Options; the two stay separate types because Settings also
// carries CLI-only concerns (namespace, loader roots) the executor has no
// business seeing.
func (s Settings) ExecutorOptions() executor.Options {
	return executor.Options{
		Parallelism:      s.Parallelism,
		PerObjectTimeout: s.PerObjectTimeout,
		DeployTimeout:    s.DeployTimeout,
		MaxAttempts:      s.MaxAttempts,
		ReadinessPoll:    s.ReadinessPoll,
	}
}
