// Package tui is a full-screen terminal front-end for the workspace
// shortcut slots, for editing over SSH or from a bare TTY.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skoglund/wskeys/internal/keysym"
)

type screen int

const (
	screenBindings screen = iota
	screenHelp
)

type switchScreenMsg struct {
	target screen
}

// MainModel routes between the bindings screen and the help overlay.
type MainModel struct {
	currentScreen screen
	width         int
	height        int
	bindings      BindingsModel
	help          HelpModel
}

func NewMainModel(st Settings, tbl *keysym.Table) MainModel {
	return MainModel{
		currentScreen: screenBindings,
		bindings:      NewBindingsModel(st, tbl),
		help:          NewHelpModel(),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.bindings.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bindings, _ = m.bindings.Update(msg)
		m.help, _ = m.help.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case switchScreenMsg:
		m.currentScreen = msg.target
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenBindings:
		m.bindings, cmd = m.bindings.Update(msg)
	case screenHelp:
		m.help, cmd = m.help.Update(msg)
	}

	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case screenBindings:
		return m.bindings.View()
	case screenHelp:
		return m.help.View()
	default:
		return ""
	}
}
