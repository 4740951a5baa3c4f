package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var defaultLogger *slog.Logger

// InitForCLI initializes the process-wide structured logger for the piceli
// CLI and bridges it into controller-runtime's logr sink so client and
// dynamic-client operations log through the same handler.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	opts := &slog.HandlerOptions{Level: filterLevel.SlogLevel()}
	handler := slog.NewTextHandler(output, opts)
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)

	// controller-runtime prints "log.SetLogger(...) was never called" warnings
	// and drops log output silently otherwise; route it through the same handler.
	ctrl.SetLogger(logr.FromSlogHandler(handler))
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if defaultLogger == nil || !defaultLogger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	var attrs []slog.Attr
	attrs = append(attrs, slog.String("subsystem", subsystem))
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// DeployEvent is a structured record of one planner decision or executor
// outcome, logged at INFO with an [DEPLOY] prefix so operators can grep a
// deploy's timeline out of an otherwise verbose log stream.
type DeployEvent struct {
	// RunID correlates every event of a single `deploy run` invocation.
	RunID string
	// Identity is "kind/namespace/name" of the object the event concerns.
	Identity string
	// Action is the planner decision or executor phase (e.g. "CREATE", "PATCH", "rollback").
	Action string
	// Outcome is "applied", "ready", "failed", "rolled-back", etc.
	Outcome string
	// Details carries free-form context (diff summary, retry count).
	Details string
	// Error is set when Outcome denotes failure.
	Error string
}

// Deploy logs a structured deploy-timeline event at INFO level.
func Deploy(event DeployEvent) {
	parts := make([]string, 0, 6)
	parts = append(parts, "run="+event.RunID)
	parts = append(parts, "object="+event.Identity)
	parts = append(parts, "action="+event.Action)
	parts = append(parts, "outcome="+event.Outcome)
	if event.Details != "" {
		parts = append(parts, "details="+event.Details)
	}
	if event.Error != "" {
		parts = append(parts, "error="+event.Error)
	}

	logInternal(LevelInfo, "deploy", nil, "[DEPLOY] %s", strings.Join(parts, " "))
}

// Discard silences all log output, used by tests that exercise packages
// which log internally but whose assertions only care about return values.
func Discard() {
	InitForCLI(LevelError, io.Discard)
}
