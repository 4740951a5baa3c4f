// Package config resolves the CLI flag surface into a Settings value the
// rest of the module consumes. It owns no I/O of its own: Settings is a
// plain value type. Besides small mapping helpers (ParseModulePath,
// Settings.ExecutorOptions), the behavior it carries is the
// namespace-override conflict policy, since that decision is shared by
// every CanonicalObject the loader produces.
package config
