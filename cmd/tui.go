package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skoglund/wskeys/internal/gsettings"
	"github.com/skoglund/wskeys/internal/keysym"
	"github.com/skoglund/wskeys/tui"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Launch the interactive terminal UI",
	Long:    "Start the full-screen terminal interface for browsing and editing every keybinding slot, for use over SSH or from a bare console.",
	GroupID: "ui",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := tui.NewMainModel(gsettings.New(), keysym.Load())
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
