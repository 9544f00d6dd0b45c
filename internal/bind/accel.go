package bind

import (
	"fmt"
	"sort"
	"strings"
)

// modifier name aliases accepted in typed accelerators, keyed by the
// canonical names used in Modifiers.
var modifierAliases = map[string]string{
	"alt":     "alt",
	"option":  "alt",
	"ctrl":    "ctrl",
	"control": "ctrl",
	"primary": "ctrl",
	"super":   "super",
	"win":     "super",
	"windows": "super",
	"cmd":     "super",
	"command": "super",
	"search":  "super",
	"shift":   "shift",
}

// ParseAccel interprets an accelerator typed on the command line. Two forms
// are accepted: raw gsettings tokens ("<Shift><Super>3") and plus-separated
// names ("shift+super+3"). The key part is returned untranslated; Format
// maps it through the keysym table when the value is written.
func ParseAccel(s string) (modIndex int, key string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", fmt.Errorf("empty accelerator")
	}

	if strings.HasPrefix(s, "<") {
		return parseRawAccel(s)
	}

	parts := strings.Split(s, "+")
	key = parts[len(parts)-1]
	if key == "" {
		return 0, "", fmt.Errorf("accelerator %q has no key", s)
	}

	seen := map[string]bool{}
	for _, p := range parts[:len(parts)-1] {
		canonical, ok := modifierAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return 0, "", fmt.Errorf("unknown modifier %q in %q", p, s)
		}
		seen[canonical] = true
	}

	idx, err := modifierIndex(seen)
	if err != nil {
		return 0, "", fmt.Errorf("accelerator %q: %w", s, err)
	}
	return idx, key, nil
}

func parseRawAccel(s string) (int, string, error) {
	idx := Detect(s)
	rest := s
	if tok := Modifiers()[idx].Token; tok != "" {
		rest = strings.ReplaceAll(rest, tok, "")
	}
	if strings.ContainsAny(rest, "<>") {
		return 0, "", fmt.Errorf("unsupported modifier tokens in %q", s)
	}
	if rest == "" {
		return 0, "", fmt.Errorf("accelerator %q has no key", s)
	}
	return idx, rest, nil
}

func modifierIndex(seen map[string]bool) (int, error) {
	switch {
	case len(seen) == 0:
		return 0, nil
	case len(seen) == 1 && seen["alt"]:
		return 1, nil
	case len(seen) == 1 && seen["ctrl"]:
		return 2, nil
	case len(seen) == 1 && seen["super"]:
		return 3, nil
	case len(seen) == 1 && seen["shift"]:
		return 4, nil
	case len(seen) == 2 && seen["shift"] && seen["super"]:
		return 5, nil
	default:
		names := make([]string, 0, len(seen))
		for n := range seen {
			names = append(names, n)
		}
		sort.Strings(names)
		return 0, fmt.Errorf("unsupported modifier combination %s", strings.Join(names, "+"))
	}
}
