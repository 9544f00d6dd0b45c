package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/gui"
	"github.com/skoglund/wskeys/internal/gsettings"
	"github.com/skoglund/wskeys/internal/keysym"
)

var guiCmd = &cobra.Command{
	Use:     "gui",
	Short:   "Open the desktop window",
	Long:    "Open the desktop window for editing workspace shortcuts. This is also what a bare wskeys invocation does.",
	GroupID: "ui",
	Args:    cobra.NoArgs,
	RunE:    runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	gui.New(gsettings.New(), keysym.Load()).Run()
	return nil
}
