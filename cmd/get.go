package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/gsettings"
	"github.com/skoglund/wskeys/internal/keysym"
)

var getCmd = &cobra.Command{
	Use:   "get <slot>",
	Short: "Print one slot's shortcut",
	Long: `Print one slot's accelerator and raw stored value. The slot is the
gsettings key name, e.g. switch-to-workspace-3 or move-to-workspace-1.`,
	GroupID: "slots",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := bind.ParseSlotKey(args[0])
		if err != nil {
			return err
		}

		raw, err := gsettings.New().Binding(cmd.Context(), slot)
		if err != nil {
			return err
		}

		mod, key := bind.Parse(raw, keysym.Load())
		accel := bind.LayoutPC.Accel(mod, key)
		if accel == "" {
			accel = "-"
		}
		fmt.Printf("%s  %s  %s\n", slot.Key(), accel, raw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
