package bind

import (
	"fmt"
	"regexp"
	"strings"
)

// Layout selects the printable labels used for modifier keys. GNOME stores
// the same tokens everywhere; what the key cap says depends on the keyboard.
type Layout int

const (
	// LayoutPC labels Super as "Win".
	LayoutPC Layout = iota
	// LayoutMac labels Super as "Command" and Alt as "Option".
	LayoutMac
	// LayoutChrome labels Super as "Search".
	LayoutChrome
)

// ParseLayout resolves a layout name. Accepted spellings follow the
// keyboards themselves: pc/windows, mac/apple, chrome/chromebook.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "pc", "windows":
		return LayoutPC, nil
	case "mac", "apple":
		return LayoutMac, nil
	case "chrome", "chromebook":
		return LayoutChrome, nil
	default:
		return LayoutPC, fmt.Errorf("unknown keyboard layout %q (valid: pc, mac, chrome)", s)
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutMac:
		return "mac"
	case LayoutChrome:
		return "chrome"
	default:
		return "pc"
	}
}

var tokenRE = regexp.MustCompile(`<[^>]+>`)

func (l Layout) labels() map[string]string {
	m := map[string]string{
		"<Ctrl>":  "Ctrl",
		"<Shift>": "Shift",
		"<Alt>":   "Alt",
	}
	switch l {
	case LayoutMac:
		m["<Alt>"] = "Option"
		m["<Super>"] = "Command"
	case LayoutChrome:
		m["<Super>"] = "Search"
	default:
		m["<Super>"] = "Win"
	}
	return m
}

// Accel renders a binding's modifier and key as a printable accelerator,
// e.g. "Shift + Win + 3". An empty key yields an empty string.
func (l Layout) Accel(modIndex int, key string) string {
	if key == "" {
		return ""
	}

	mods := Modifiers()
	if modIndex < 0 || modIndex >= len(mods) {
		modIndex = 0
	}

	labels := l.labels()
	var parts []string
	for _, tok := range tokenRE.FindAllString(mods[modIndex].Token, -1) {
		if label, ok := labels[tok]; ok {
			parts = append(parts, label)
		} else {
			parts = append(parts, strings.Trim(tok, "<>"))
		}
	}
	parts = append(parts, key)
	return strings.Join(parts, " + ")
}
