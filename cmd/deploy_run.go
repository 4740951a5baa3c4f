package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/executor"
	"github.com/giantswarm/piceli/internal/graph"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/transport"
)

func newDeployRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the plan against the live cluster",
		Long: `run builds the layered plan (without validation, matching the planner's
assumption that unresolved references outside the input set already exist
on the cluster) and applies it one level at a time. -c creates the target
namespace first if it doesn't already exist.`,
	}
	flags := registerCommonFlags(cmd)
	var createNamespace bool
	cmd.Flags().BoolVarP(&createNamespace, "create-namespace", "c", false, "create the target namespace if missing before level 0")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		settings := flags.settings()
		objs, err := loadObjects(settings)
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		layered, err := graph.Plan(objs, false, nil, graph.DefaultOptions())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		t, err := newTransport()
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		ctx := context.Background()
		if createNamespace && settings.Namespace != "" {
			if err := ensureNamespace(ctx, t, settings.Namespace); err != nil {
				return exitf(ExitCodeValidationError, "%w", err)
			}
		}

		exec := executor.New(t, settings.ExecutorOptions())
		state, errs := exec.Deploy(ctx, layered)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "deploy %s: %s\n", exec.RunID, state)
		for _, e := range errs {
			fmt.Fprintf(out, "  %s\n", e)
		}

		return runOutcomeError(state)
	}
	return cmd
}

// runOutcomeError maps the executor's terminal deploy state onto the CLI
// exit-code taxonomy: Completed needs no error, RolledBack is a recoverable
// failure, anything else (RollbackFailed) needs a human to reconcile the
// cluster.
func runOutcomeError(state executor.State) error {
	switch state {
	case executor.Completed:
		return nil
	case executor.RolledBack:
		return exitf(ExitCodeApplyRolledBack, "deploy failed, rolled back cleanly")
	default:
		return exitf(ExitCodeRollbackFailed, "deploy failed and rollback did not complete cleanly")
	}
}

// ensureNamespace creates the target namespace if it is not already
// present; an existing namespace (including one this invocation is about
// to reconcile via the loaded object set) is left untouched.
func ensureNamespace(ctx context.Context, t transport.Transport, namespace string) error {
	id := object.Identity{Version: "v1", Kind: "Namespace", Name: namespace}
	_, err := t.Get(ctx, id)
	if err == nil {
		return nil
	}
	if _, ok := err.(*transport.NotFoundError); !ok {
		return err
	}

	ns := object.New(id, nil, nil, object.NewMap(nil), "deploy run -c", object.SourceStatic)
	return t.Create(ctx, id, ns.Full())
}
