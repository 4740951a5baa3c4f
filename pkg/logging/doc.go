// Package logging provides piceli's structured logging: a single slog-backed
// text handler for CLI output, bridged into controller-runtime's logr sink
// so client and dynamic-client operations log through the same stream, plus
// a Deploy helper for emitting a grep-able per-object deploy timeline.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("executor", "applying level %d (%d objects)", level, len(objs))
//	logging.Deploy(logging.DeployEvent{RunID: runID, Identity: id.String(), Action: "PATCH", Outcome: "applied"})
package logging
