package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/gsettings"
)

var disableYesFlag bool

var disableAppSwitchersCmd = &cobra.Command{
	Use:   "disable-app-switchers",
	Short: "Disable all switch-to-application shortcuts",
	Long: `Write the disabled value to every switch-to-application slot so that
GNOME Shell no longer claims Super+digit for the dash and the workspace
shortcuts can use it. Asks for confirmation unless --yes is given.`,
	GroupID: "slots",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !disableYesFlag {
			confirm := promptui.Prompt{
				Label:     "Clear all switch-to-application shortcuts",
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Println("aborted")
				return nil
			}
		}

		if err := gsettings.New().DisableAppSwitchers(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("application switchers disabled")
		return nil
	},
}

func init() {
	disableAppSwitchersCmd.Flags().BoolVarP(&disableYesFlag, "yes", "y", false,
		"skip the confirmation prompt")
	rootCmd.AddCommand(disableAppSwitchersCmd)
}
