package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/giantswarm/piceli/internal/object"
)

func newModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect the loaded object model without contacting a cluster",
	}
	cmd.AddCommand(newModelListCmd())
	return cmd
}

func newModelListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Emit identity and origin for every loaded object",
	}
	flags := registerCommonFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		objs, err := loadObjects(flags.settings())
		if err != nil {
			return exitf(ExitCodeValidationError, "%w", err)
		}

		sortObjectsByIdentity(objs)

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"IDENTITY", "ORIGIN"})
		for _, o := range objs {
			t.AppendRow(table.Row{o.Identity().String(), o.Origin()})
		}
		t.Render()
		return nil
	}
	return cmd
}

func sortObjectsByIdentity(objs []object.CanonicalObject) {
	for i := 1; i < len(objs); i++ {
		for j := i; j > 0 && objs[j].Identity().Less(objs[j-1].Identity()); j-- {
			objs[j-1], objs[j] = objs[j], objs[j-1]
		}
	}
}
