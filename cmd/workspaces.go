package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/gsettings"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces [count]",
	Short: "Print or set the workspace count",
	Long: `Print the number of workspaces, or set it when a count is given.
The count is stored in org.gnome.desktop.wm.preferences num-workspaces.`,
	GroupID: "slots",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := gsettings.New()
		ctx := cmd.Context()

		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("workspace count must be a number, got %q", args[0])
			}
			if err := st.SetNumWorkspaces(ctx, n); err != nil {
				return err
			}
		}

		count, err := st.NumWorkspaces(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}
