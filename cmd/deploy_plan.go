package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/graph"
)

func newDeployPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build the layered plan and print it",
		Long: `plan resolves the loaded object set into a dependency-ordered series of
levels, without contacting the cluster. With -v it also runs full
validation: cycle detection and dangling-reference checking.`,
	}
	flags := registerCommonFlags(cmd)
	var validate bool
	cmd.Flags().BoolVarP(&validate, "validate", "v", false, "run full validation (cycles, dangling references)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		objs, err := loadObjects(flags.settings())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		layered, err := graph.Plan(objs, validate, nil, graph.DefaultOptions())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		out := cmd.OutOrStdout()
		for i, level := range layered.Levels {
			fmt.Fprintf(out, "level %d:\n", i)

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"IDENTITY"})
			for _, id := range level {
				t.AppendRow(table.Row{id.String()})
			}
			t.Render()
		}
		return nil
	}
	return cmd
}
