package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/gsettings"
)

var resetCmd = &cobra.Command{
	Use:     "reset <slot>",
	Short:   "Disable a slot's shortcut",
	Long:    `Write the disabled value [""] to one keybinding slot.`,
	GroupID: "slots",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := bind.ParseSlotKey(args[0])
		if err != nil {
			return err
		}
		if err := gsettings.New().SetBinding(cmd.Context(), slot, bind.Disabled); err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", slot.Key(), bind.Disabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
