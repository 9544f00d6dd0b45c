package cmd

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureLoggingUsesFlag(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	configureLogging("debug")
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level from flag, got %v", got)
	}
}

func TestConfigureLoggingFallsBackToEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	configureLogging("")
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Fatalf("expected warn level from env, got %v", got)
	}
}

func TestConfigureLoggingDefaultsToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	configureLogging("")
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected info level by default, got %v", got)
	}
}

func TestConfigureLoggingIgnoresUnknownLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	configureLogging("nonsense")
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected unknown level to fall back to info, got %v", got)
	}
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"gui", "tui", "list", "get", "set", "reset",
		"workspaces", "disable-app-switchers", "version",
	} {
		if !names[want] {
			t.Fatalf("expected %q to be registered on the root command", want)
		}
	}
}

func TestRootRegistersGroups(t *testing.T) {
	ids := map[string]bool{}
	for _, g := range rootCmd.Groups() {
		ids[g.ID] = true
	}
	if !ids["ui"] || !ids["slots"] {
		t.Fatalf("expected ui and slots command groups, got %v", ids)
	}
}
