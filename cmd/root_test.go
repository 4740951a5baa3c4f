package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giantswarm/piceli/internal/graph"
	"github.com/giantswarm/piceli/internal/object"
)

func TestGetExitCodeExitError(t *testing.T) {
	err := exitf(ExitCodeApplyRolledBack, "boom")
	assert.Equal(t, ExitCodeApplyRolledBack, getExitCode(err))
}

func TestGetExitCodeValidationErrors(t *testing.T) {
	cases := []error{
		&object.DuplicateIdentityError{Identity: object.Identity{Kind: "ConfigMap", Name: "x"}},
		&object.MalformedObjectError{Origin: "x", Reason: "missing kind"},
		&graph.CycleError{},
		&graph.DanglingReferenceError{},
		&graph.DuplicateError{},
	}
	for _, err := range cases {
		assert.Equal(t, ExitCodeValidationError, getExitCode(err), "%T", err)
	}
}

func TestGetExitCodeUnwrapsExitError(t *testing.T) {
	wrapped := errors.New("inner")
	err := &exitError{code: ExitCodeRollbackFailed, err: wrapped}
	assert.Equal(t, ExitCodeRollbackFailed, getExitCode(err))
	assert.ErrorIs(t, err.Unwrap(), wrapped, "expected Unwrap to return the inner error")
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"version", "model", "deploy"} {
		assert.True(t, names[want], "expected subcommand %q to be registered", want)
	}
}
