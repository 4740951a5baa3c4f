package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ctrl "sigs.k8s.io/controller-runtime"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.SlogLevel())
	}
}

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	require.NotNil(t, defaultLogger, "expected defaultLogger to be set after InitForCLI")

	Info("test-subsystem", "test message")

	output := buf.String()
	assert.Contains(t, output, "test message", "expected log message to appear in CLI output")
	assert.Contains(t, output, "test-subsystem", "expected subsystem to appear in CLI output")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("test", "debug message")
	Info("test", "info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message", "debug message should be filtered out at INFO level")
	assert.Contains(t, output, "info message", "info message should appear at INFO level")
}

func TestDeployEvent(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Deploy(DeployEvent{
		RunID:    "abc123",
		Identity: "Deployment/default/web",
		Action:   "PATCH",
		Outcome:  "applied",
	})

	output := buf.String()
	for _, want := range []string{"[DEPLOY]", "run=abc123", "object=Deployment/default/web", "action=PATCH", "outcome=applied"} {
		assert.Contains(t, output, want)
	}
}

func TestControllerRuntimeLoggerInitialization(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	logger := ctrl.Log
	assert.NotNil(t, logger.GetSink(), "expected controller-runtime logger sink to be initialized")
	assert.True(t, logger.Enabled(), "expected controller-runtime logger to be enabled")
	logger.Info("test message from controller-runtime logger", "key", "value")
}
