package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/compare"
	"github.com/giantswarm/piceli/internal/graph"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/plan"
	"github.com/giantswarm/piceli/internal/transport"
)

func newDeployDetailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Plan, then diff every object against its live cluster state",
		Long: `detail builds the layered plan, fetches each object's live state from the
cluster and runs the comparator, printing the planner's decision and every
differing field. --hide-no-action (-a) suppresses rows for objects that
need no action.`,
	}
	flags := registerCommonFlags(cmd)
	var validate, hideNoAction bool
	cmd.Flags().BoolVarP(&validate, "validate", "v", false, "run full validation (cycles, dangling references)")
	cmd.Flags().BoolVarP(&hideNoAction, "hide-no-action", "a", false, "suppress NO_ACTION rows")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		objs, err := loadObjects(flags.settings())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		layered, err := graph.Plan(objs, validate, nil, graph.DefaultOptions())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		t, err := newTransport()
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		out := cmd.OutOrStdout()
		ctx := context.Background()
		for i, level := range layered.Levels {
			fmt.Fprintf(out, "level %d:\n", i)

			tbl := table.NewWriter()
			tbl.SetOutputMirror(out)
			tbl.SetStyle(table.StyleRounded)
			tbl.AppendHeader(table.Row{"ACTION", "IDENTITY"})

			for _, id := range level {
				if err := printDetail(ctx, tbl, out, t, id, layered.Objects[id], hideNoAction); err != nil {
					return exitf(ExitCodeValidationError, "%w", err)
				}
			}
			tbl.Render()
		}
		return nil
	}
	return cmd
}

func printDetail(ctx context.Context, tbl table.Writer, diffOut io.Writer, t transport.Transport, id object.Identity, obj object.CanonicalObject, hideNoAction bool) error {
	live, err := t.Get(ctx, id)
	liveExists := true
	if err != nil {
		if _, ok := err.(*transport.NotFoundError); ok {
			liveExists = false
		} else {
			return err
		}
	}

	desired := obj.Full()
	action, err := plan.Decide(id.Kind, id, liveExists, live, desired)
	if err != nil {
		return err
	}

	if action.Kind == plan.NoAction && hideNoAction {
		return nil
	}
	tbl.AppendRow(table.Row{action.Kind, id.String()})

	if !liveExists || action.Kind == plan.NoAction {
		return nil
	}

	result := compare.Compare(id.Kind, live, desired)
	var diffs []compare.DiffEntry
	for _, entry := range result.Entries {
		if entry.Classification == compare.Differing {
			diffs = append(diffs, entry)
		}
	}
	if len(diffs) == 0 {
		return nil
	}

	fmt.Fprintf(diffOut, "  %s diff:\n", id)
	diffTbl := table.NewWriter()
	diffTbl.SetOutputMirror(diffOut)
	diffTbl.SetStyle(table.StyleRounded)
	diffTbl.AppendHeader(table.Row{"PATH", "LIVE", "DESIRED"})
	for _, entry := range diffs {
		diffTbl.AppendRow(table.Row{entry.Path, entry.Live.Scalar, entry.Desired.Scalar})
	}
	diffTbl.Render()
	return nil
}
