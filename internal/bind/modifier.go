// Package bind models the fixed set of GNOME keybinding slots this tool
// edits and the accelerator values gsettings stores for them.
package bind

import (
	"sort"
	"strings"
)

// Modifier is one selectable modifier combination. Name is the label shown
// in the editor form, Token the accelerator prefix gsettings stores.
type Modifier struct {
	Name  string
	Token string
}

// Modifiers returns the candidate combinations in form order. The index of
// an entry is part of the editor model, so the order never changes.
func Modifiers() []Modifier {
	return []Modifier{
		{Name: "NONE", Token: ""},
		{Name: "ALT", Token: "<Alt>"},
		{Name: "CTRL", Token: "<Ctrl>"},
		{Name: "SUPER", Token: "<Super>"},
		{Name: "SHIFT", Token: "<Shift>"},
		{Name: "SHIFT+SUPER", Token: "<Shift><Super>"},
	}
}

// Detect returns the index of the modifier whose token occurs in raw.
// Candidates are tried longest token first so that compound tokens win over
// the single tokens they contain; ties keep form order. Values without any
// known token map to NONE.
func Detect(raw string) int {
	mods := Modifiers()

	order := make([]int, len(mods))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(mods[order[a]].Token) > len(mods[order[b]].Token)
	})

	for _, i := range order {
		if mods[i].Token != "" && strings.Contains(raw, mods[i].Token) {
			return i
		}
	}
	return 0
}
