package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var darkBG = termenv.HasDarkBackground()

// pick chooses between the dark- and light-background variant of a color.
func pick(dark, light string) lipgloss.Color {
	if darkBG {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

// Colors (Adwaita palette)
var (
	colorAccent = lipgloss.Color("#3584E4")
	colorRed    = pick("#F66151", "#C01C28")
	colorGreen  = pick("#57E389", "#26A269")
	colorText   = pick("#DEDDDA", "#3D3846")
	colorMuted  = lipgloss.Color("#77767B")
	colorWhite  = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(colorText)

	rawValueStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	disabledStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)
)
