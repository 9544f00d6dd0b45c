package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/gsettings"
	"github.com/skoglund/wskeys/internal/keysym"
)

var listLayoutFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every keybinding slot",
	Long: `Print a table of every keybinding slot with its human-readable
accelerator and the raw value gsettings stores. The layout picks the
label used for the Super key: Win on PC, Command on Mac, Search on
Chromebooks.`,
	GroupID: "slots",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&listLayoutFlag, "layout", "",
		"keyboard layout for modifier labels: pc, mac, chrome (default WSKEYS_LAYOUT or pc)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	layout, err := resolveLayout(listLayoutFlag)
	if err != nil {
		return err
	}

	st := gsettings.New()
	tbl := keysym.Load()
	ctx := cmd.Context()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSHORTCUT\tSTORED")
	for _, slot := range bind.AllSlots() {
		raw, err := st.Binding(ctx, slot)
		if err != nil {
			return err
		}
		mod, key := bind.Parse(raw, tbl)
		accel := layout.Accel(mod, key)
		if accel == "" {
			accel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", slot.Key(), accel, raw)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	count, err := st.NumWorkspaces(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d workspaces\n", count)
	return nil
}

// resolveLayout picks the layout from the flag, then the WSKEYS_LAYOUT
// environment variable, then an interactive picker when stdin is a
// terminal. Non-interactive runs fall back to the PC layout.
func resolveLayout(flag string) (bind.Layout, error) {
	if flag != "" {
		return bind.ParseLayout(flag)
	}
	if env := os.Getenv("WSKEYS_LAYOUT"); env != "" {
		return bind.ParseLayout(env)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return bind.LayoutPC, nil
	}
	return pickLayout()
}

func pickLayout() (bind.Layout, error) {
	items := []string{
		"PC / Windows   (Win)",
		"Mac            (Command)",
		"Chromebook     (Search)",
	}
	sel := promptui.Select{
		Label: "Select keyboard layout",
		Items: items,
		Size:  len(items),
	}
	i, _, err := sel.Run()
	if err != nil {
		return bind.LayoutPC, fmt.Errorf("layout selection: %w", err)
	}
	return bind.Layout(i), nil
}
