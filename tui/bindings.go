package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/keysym"
)

// Settings is the slice of the gsettings client the screens need.
type Settings interface {
	Binding(ctx context.Context, slot bind.Slot) (string, error)
	SetBinding(ctx context.Context, slot bind.Slot, value string) error
	NumWorkspaces(ctx context.Context) (int, error)
	SetNumWorkspaces(ctx context.Context, n int) error
	DisableAppSwitchers(ctx context.Context) error
}

type bindingsView int

const (
	bindingsViewList bindingsView = iota
	bindingsViewEdit
	bindingsViewWorkspaces
	bindingsViewConfirm
)

// BindingsModel manages the slot list and its edit forms.
type BindingsModel struct {
	width    int
	height   int
	view     bindingsView
	settings Settings
	table    *keysym.Table
	rows     []*bind.Binding
	cursor   int
	err      string
	status   string

	workspaces int

	// Edit form fields
	editModifier int
	keyInput     textinput.Model
	wsInput      textinput.Model
	focusIndex   int
}

func NewBindingsModel(st Settings, tbl *keysym.Table) BindingsModel {
	m := BindingsModel{settings: st, table: tbl}
	m.initInputs()
	m.loadRows()
	return m
}

func (m *BindingsModel) initInputs() {
	k := textinput.New()
	k.Placeholder = "key"
	k.CharLimit = 1
	k.Width = 8
	m.keyInput = k

	w := textinput.New()
	w.Placeholder = "count"
	w.CharLimit = 2
	w.Width = 8
	m.wsInput = w
}

func (m *BindingsModel) loadRows() {
	ctx := context.Background()
	rows := bind.NewBindings(bind.AllSlots())
	for _, row := range rows {
		raw, err := m.settings.Binding(ctx, row.Slot)
		if err != nil {
			m.err = err.Error()
			return
		}
		row.Load(raw, m.table)
	}
	n, err := m.settings.NumWorkspaces(ctx)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.rows = rows
	m.workspaces = n
	m.err = ""
}

func (m *BindingsModel) reloadRow(i int) {
	raw, err := m.settings.Binding(context.Background(), m.rows[i].Slot)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.rows[i].Load(raw, m.table)
	m.err = ""
}

func (m BindingsModel) Init() tea.Cmd {
	return nil
}

func (m BindingsModel) Update(msg tea.Msg) (BindingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case bindingsViewEdit:
			return m.updateEditForm(msg)
		case bindingsViewWorkspaces:
			return m.updateWorkspacesForm(msg)
		case bindingsViewConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	// Forward non-key messages (e.g. blink) to the focused input
	switch m.view {
	case bindingsViewEdit:
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	case bindingsViewWorkspaces:
		var cmd tea.Cmd
		m.wsInput, cmd = m.wsInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m BindingsModel) updateList(msg tea.KeyMsg) (BindingsModel, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter", "e":
		if len(m.rows) == 0 {
			return m, nil
		}
		row := m.rows[m.cursor]
		m.view = bindingsViewEdit
		m.focusIndex = 0
		m.status = ""
		m.err = ""
		m.editModifier = row.Modifier
		m.keyInput.SetValue(row.Key)
		m.keyInput.Blur()

	case "r":
		if len(m.rows) == 0 {
			return m, nil
		}
		slot := m.rows[m.cursor].Slot
		if err := m.settings.SetBinding(context.Background(), slot, bind.Disabled); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.reloadRow(m.cursor)
		m.status = "disabled " + slot.Key()

	case "w":
		m.view = bindingsViewWorkspaces
		m.err = ""
		m.status = ""
		m.wsInput.SetValue(strconv.Itoa(m.workspaces))
		m.wsInput.Focus()
		return m, textinput.Blink

	case "d":
		m.view = bindingsViewConfirm
		m.err = ""
		m.status = ""

	case "?":
		return m, func() tea.Msg { return switchScreenMsg{target: screenHelp} }
	}

	return m, nil
}

func (m BindingsModel) updateEditForm(msg tea.KeyMsg) (BindingsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = bindingsViewList
		m.err = ""
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.focusIndex = 1 - m.focusIndex
		if m.focusIndex == 1 {
			m.keyInput.Focus()
			return m, textinput.Blink
		}
		m.keyInput.Blur()
		return m, nil

	case "left", "right":
		if m.focusIndex == 0 {
			n := len(bind.Modifiers())
			if msg.String() == "left" {
				m.editModifier = (m.editModifier + n - 1) % n
			} else {
				m.editModifier = (m.editModifier + 1) % n
			}
			return m, nil
		}

	case "enter":
		row := m.rows[m.cursor]
		key := strings.TrimSpace(m.keyInput.Value())
		value := bind.Format(m.editModifier, key, m.table)

		if err := m.settings.SetBinding(context.Background(), row.Slot, value); err != nil {
			m.err = err.Error()
			return m, nil
		}

		m.reloadRow(m.cursor)
		m.view = bindingsViewList
		m.status = "saved " + row.Slot.Key()
		return m, nil
	}

	// Forward other keys to the key input when focused
	if m.focusIndex == 1 {
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BindingsModel) updateWorkspacesForm(msg tea.KeyMsg) (BindingsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = bindingsViewList
		m.err = ""
		return m, nil

	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.wsInput.Value()))
		if err != nil {
			m.err = "workspace count must be a number"
			return m, nil
		}
		if err := m.settings.SetNumWorkspaces(context.Background(), n); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.workspaces = n
		m.view = bindingsViewList
		m.err = ""
		m.status = fmt.Sprintf("workspace count set to %d", n)
		return m, nil
	}

	var cmd tea.Cmd
	m.wsInput, cmd = m.wsInput.Update(msg)
	return m, cmd
}

func (m BindingsModel) updateConfirm(msg tea.KeyMsg) (BindingsModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.settings.DisableAppSwitchers(context.Background()); err != nil {
			m.err = err.Error()
			m.view = bindingsViewList
			return m, nil
		}
		m.loadRows()
		m.view = bindingsViewList
		m.status = "application switchers disabled"

	case "n", "N", "esc":
		m.view = bindingsViewList
	}
	return m, nil
}

func (m BindingsModel) View() string {
	if m.width == 0 {
		return ""
	}

	left := headerStyle.Render(" wskeys ")
	right := headerStyle.Render(fmt.Sprintf(" %d workspaces ", m.workspaces))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	header := left + headerStyle.Render(strings.Repeat(" ", gap)) + right

	var content string
	switch m.view {
	case bindingsViewEdit:
		content = m.viewEditForm()
	case bindingsViewWorkspaces:
		content = m.viewWorkspacesForm()
	case bindingsViewConfirm:
		content = m.viewConfirm()
	default:
		content = m.viewList()
	}

	var footer string
	switch m.view {
	case bindingsViewEdit:
		footer = statusBarStyle.Width(m.width).
			Render("tab: next field | left/right: modifier | enter: save | esc: cancel")
	case bindingsViewWorkspaces:
		footer = statusBarStyle.Width(m.width).
			Render("enter: save | esc: cancel")
	case bindingsViewConfirm:
		footer = statusBarStyle.Width(m.width).
			Render("y: confirm | n/esc: cancel")
	default:
		footer = statusBarStyle.Width(m.width).
			Render("j/k: navigate | enter: edit | r: disable | w: workspaces | d: disable app switchers | ?: help | q: quit")
	}

	contentHeight := m.height - 2 // header + footer
	if contentHeight < 1 {
		contentHeight = 1
	}
	content = lipgloss.NewStyle().
		Height(contentHeight).
		Width(m.width).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func sectionTitle(a bind.Action) string {
	switch a {
	case bind.ActionMove:
		return "Move window to workspace"
	case bind.ActionAppSwitch:
		return "Switch to application"
	default:
		return "Switch to workspace"
	}
}

func (m BindingsModel) viewList() string {
	if m.err != "" {
		return "\n" + errorMsgStyle.Padding(0, 2).Render("Error: "+m.err)
	}

	var lines []string
	cursorLine := 0
	lastAction := bind.Action(-1)

	if m.status != "" {
		lines = append(lines, statusMsgStyle.Padding(0, 2).Render(m.status))
	}

	for i, row := range m.rows {
		if row.Slot.Action != lastAction {
			lastAction = row.Slot.Action
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionStyle.Render("  "+sectionTitle(lastAction)))
		}

		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
			cursorLine = len(lines)
		}

		accel := bind.LayoutPC.Accel(row.Modifier, row.Key)
		if accel == "" {
			accel = "disabled"
		}
		line := fmt.Sprintf("%s%-28s %-18s %s", cursor, row.Slot.Label(), accel, row.Raw)
		lines = append(lines, style.Render(line))
	}

	// Keep the cursor visible when the list is taller than the window
	h := m.height - 3
	if h > 0 && len(lines) > h {
		start := cursorLine - h/2
		if start < 0 {
			start = 0
		}
		if start > len(lines)-h {
			start = len(lines) - h
		}
		lines = lines[start : start+h]
	}

	return "\n" + strings.Join(lines, "\n")
}

func (m BindingsModel) viewEditForm() string {
	row := m.rows[m.cursor]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + sectionStyle.Render(row.Slot.Label()) + "\n\n")

	modifier := bind.Modifiers()[m.editModifier].Name
	if m.focusIndex == 0 {
		modifier = selectedStyle.Render("< " + modifier + " >")
	} else {
		modifier = normalStyle.Render("  " + modifier)
	}
	stored := rawValueStyle.Render(row.Raw)
	if row.Raw == bind.Disabled {
		stored = disabledStyle.Render(row.Raw)
	}
	b.WriteString("  " + formLabelStyle.Render("Modifier:") + " " + modifier + "\n\n")
	b.WriteString("  " + formLabelStyle.Render("Key:") + " " + m.keyInput.View() + "\n\n")
	b.WriteString("  " + formLabelStyle.Render("Stored:") + " " + stored + "\n")

	if m.err != "" {
		b.WriteString("\n  " + errorMsgStyle.Render("Error: "+m.err) + "\n")
	}

	return b.String()
}

func (m BindingsModel) viewWorkspacesForm() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + sectionStyle.Render("Workspace count") + "\n\n")
	b.WriteString("  " + formLabelStyle.Render("Count:") + " " + m.wsInput.View() + "\n")

	if m.err != "" {
		b.WriteString("\n  " + errorMsgStyle.Render("Error: "+m.err) + "\n")
	}

	return b.String()
}

func (m BindingsModel) viewConfirm() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + sectionStyle.Render("Disable application switchers") + "\n\n")
	b.WriteString(normalStyle.Padding(0, 2).
		Render("Clear all switch-to-application shortcuts so Super+digit switches workspaces?"))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n  " + errorMsgStyle.Render("Error: "+m.err) + "\n")
	}

	return b.String()
}
