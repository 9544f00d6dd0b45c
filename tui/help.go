package tui

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed help.md
var helpText string

// HelpModel shows the rendered key and accelerator reference.
type HelpModel struct {
	width    int
	height   int
	viewport viewport.Model
	ready    bool
}

func NewHelpModel() HelpModel {
	return HelpModel{}
}

func (m HelpModel) Init() tea.Cmd {
	return nil
}

func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(renderMarkdown(helpText, msg.Width))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return m, func() tea.Msg { return switchScreenMsg{target: screenBindings} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m HelpModel) View() string {
	if !m.ready {
		return ""
	}

	header := headerStyle.Width(m.width).Render(" help ")
	footer := statusBarStyle.Width(m.width).Render("up/down: scroll | esc: back")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return normalStyle.Width(width).Render(content)
	}
	out, err := r.Render(content)
	if err != nil {
		return normalStyle.Width(width).Render(content)
	}
	return strings.TrimRight(out, "\n")
}
