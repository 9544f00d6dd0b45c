package bind

import (
	"fmt"
	"strconv"
	"strings"
)

// Action identifies what a keybinding slot does when triggered.
type Action int

const (
	// ActionSwitch activates workspace N.
	ActionSwitch Action = iota
	// ActionMove sends the focused window to workspace N.
	ActionMove
	// ActionAppSwitch focuses or launches the Nth pinned application.
	ActionAppSwitch
)

// GSettings schemas the slots live under.
const (
	SchemaWM          = "org.gnome.desktop.wm.keybindings"
	SchemaShell       = "org.gnome.shell.keybindings"
	SchemaPreferences = "org.gnome.desktop.wm.preferences"
)

const (
	workspaceSlots = 10
	appSwitchSlots = 9
)

// Slot is one fixed keybinding slot. Number is 1-based.
type Slot struct {
	Action Action
	Number int
}

// Key returns the gsettings key of the slot.
func (s Slot) Key() string {
	switch s.Action {
	case ActionMove:
		return fmt.Sprintf("move-to-workspace-%d", s.Number)
	case ActionAppSwitch:
		return fmt.Sprintf("switch-to-application-%d", s.Number)
	default:
		return fmt.Sprintf("switch-to-workspace-%d", s.Number)
	}
}

// Schema returns the gsettings schema the slot's key belongs to.
func (s Slot) Schema() string {
	if s.Action == ActionAppSwitch {
		return SchemaShell
	}
	return SchemaWM
}

// Label returns the human-readable description shown next to the slot.
func (s Slot) Label() string {
	switch s.Action {
	case ActionMove:
		return fmt.Sprintf("Move window to workspace %d", s.Number)
	case ActionAppSwitch:
		return fmt.Sprintf("Switch to application %d", s.Number)
	default:
		return fmt.Sprintf("Switch to workspace %d", s.Number)
	}
}

// WorkspaceSlots returns the workspace slots in display order: all
// switch-to-workspace slots followed by all move-to-workspace slots.
func WorkspaceSlots() []Slot {
	slots := make([]Slot, 0, 2*workspaceSlots)
	for n := 1; n <= workspaceSlots; n++ {
		slots = append(slots, Slot{Action: ActionSwitch, Number: n})
	}
	for n := 1; n <= workspaceSlots; n++ {
		slots = append(slots, Slot{Action: ActionMove, Number: n})
	}
	return slots
}

// AppSwitchSlots returns the application-switcher slots in display order.
func AppSwitchSlots() []Slot {
	slots := make([]Slot, 0, appSwitchSlots)
	for n := 1; n <= appSwitchSlots; n++ {
		slots = append(slots, Slot{Action: ActionAppSwitch, Number: n})
	}
	return slots
}

// AllSlots returns every slot the tool edits, in display order.
func AllSlots() []Slot {
	return append(WorkspaceSlots(), AppSwitchSlots()...)
}

// ParseSlotKey resolves a gsettings key name like "switch-to-workspace-3"
// to its slot. Keys outside the fixed slot set are rejected.
func ParseSlotKey(key string) (Slot, error) {
	var (
		action Action
		limit  int
		rest   string
	)
	switch {
	case strings.HasPrefix(key, "switch-to-workspace-"):
		action, limit = ActionSwitch, workspaceSlots
		rest = strings.TrimPrefix(key, "switch-to-workspace-")
	case strings.HasPrefix(key, "move-to-workspace-"):
		action, limit = ActionMove, workspaceSlots
		rest = strings.TrimPrefix(key, "move-to-workspace-")
	case strings.HasPrefix(key, "switch-to-application-"):
		action, limit = ActionAppSwitch, appSwitchSlots
		rest = strings.TrimPrefix(key, "switch-to-application-")
	default:
		return Slot{}, fmt.Errorf("unknown keybinding slot %q", key)
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		return Slot{}, fmt.Errorf("unknown keybinding slot %q", key)
	}
	if n < 1 || n > limit {
		return Slot{}, fmt.Errorf("slot %q out of range (1-%d)", key, limit)
	}
	return Slot{Action: action, Number: n}, nil
}
