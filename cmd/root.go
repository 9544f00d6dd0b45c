package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "wskeys",
	Short: "GNOME workspace shortcut editor",
	Long: `wskeys views and edits the GNOME keyboard shortcuts for switching
workspaces, moving windows between workspaces, and switching pinned
applications.

Every value lives in gsettings; wskeys stores nothing of its own. Run it
bare to open the desktop window, or use the subcommands for terminal and
scripting use.

Examples:
  wskeys                               # open the desktop window
  wskeys tui                           # full-screen terminal interface
  wskeys list --layout mac             # every slot with Command labels
  wskeys set switch-to-workspace-3 super+3
  wskeys reset move-to-workspace-9
  wskeys disable-app-switchers --yes   # free Super+digit for workspaces`,
	// Bare invocation opens the desktop window.
	RunE:          runGUI,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(logLevelFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: trace, debug, info, warn, error (default LOG_LEVEL or info)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "ui", Title: "Interfaces:"},
		&cobra.Group{ID: "slots", Title: "Keybinding Commands:"},
	)
}

// configureLogging sets the global zerolog logger up once: console writer
// on stderr, level from the flag with LOG_LEVEL as the fallback.
func configureLogging(flagLevel string) {
	name := flagLevel
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	level := zerolog.InfoLevel
	if name != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(name)); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Logger()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
