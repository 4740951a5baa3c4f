package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/graph"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/pkg/logging"
)

// Exit codes for deploy-related commands, per the taxonomy piceli's core
// defines: a validation error never touches the cluster, an apply failure
// that rolled back cleanly is recoverable, and a rollback failure needs a
// human to reconcile the cluster by hand.
const (
	ExitCodeSuccess         = 0
	ExitCodeValidationError = 1
	ExitCodeApplyRolledBack = 2
	ExitCodeRollbackFailed  = 3
)

// exitError lets a command report a specific exit code alongside its error,
// instead of Execute guessing one from the error's concrete type.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitf(code int, format string, args ...interface{}) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:   "piceli",
	Short: "Declarative Kubernetes object deployment",
	Long: `piceli resolves a set of Kubernetes manifests into a dependency-ordered
plan, diffs each object against the live cluster, and applies the result one
level at a time, recording every mutation so a failed deploy can roll back.`,
	SilenceUsage: true,
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func GetVersion() string {
	return rootCmd.Version
}

// Execute is the CLI entry point called from main.main().
func Execute() {
	logging.InitForCLI(logging.LevelInfo, os.Stderr)
	rootCmd.SetVersionTemplate(`{{printf "piceli version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

func getExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var dup *object.DuplicateIdentityError
	if errors.As(err, &dup) {
		return ExitCodeValidationError
	}
	var malformed *object.MalformedObjectError
	if errors.As(err, &malformed) {
		return ExitCodeValidationError
	}
	var cycle *graph.CycleError
	if errors.As(err, &cycle) {
		return ExitCodeValidationError
	}
	var dangling *graph.DanglingReferenceError
	if errors.As(err, &dangling) {
		return ExitCodeValidationError
	}
	var graphDup *graph.DuplicateError
	if errors.As(err, &graphDup) {
		return ExitCodeValidationError
	}

	return ExitCodeValidationError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newModelCmd())
	rootCmd.AddCommand(newDeployCmd())
}
