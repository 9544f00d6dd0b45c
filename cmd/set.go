package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/gsettings"
	"github.com/skoglund/wskeys/internal/keysym"
)

var setCmd = &cobra.Command{
	Use:   "set <slot> <shortcut>",
	Short: "Write a slot's shortcut",
	Long: `Write one keybinding slot. The shortcut is either plus-separated
names or a raw gsettings accelerator. Printable keys are translated to
their keysym names before writing.

Examples:
  wskeys set switch-to-workspace-3 super+3
  wskeys set move-to-workspace-3 shift+super+3
  wskeys set switch-to-workspace-4 "super+!"
  wskeys set switch-to-workspace-5 "<Super>5"`,
	GroupID: "slots",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := bind.ParseSlotKey(args[0])
		if err != nil {
			return err
		}
		mod, key, err := bind.ParseAccel(args[1])
		if err != nil {
			return err
		}
		value := bind.Format(mod, key, keysym.Load())

		st := gsettings.New()
		ctx := cmd.Context()
		if err := st.SetBinding(ctx, slot, value); err != nil {
			return err
		}
		stored, err := st.Binding(ctx, slot)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", slot.Key(), stored)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
