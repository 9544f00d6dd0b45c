package bind

import (
	"strings"

	"github.com/skoglund/wskeys/internal/keysym"
)

// Disabled is the value written to a slot to remove its accelerator.
const Disabled = `[""]`

var literalStripper = strings.NewReplacer("'", "", "[", "", "]", "")

// Parse extracts the modifier index and printable key from a raw stored
// value such as "['<Shift><Super>1']". The detected modifier token is
// removed wherever it occurs, the array literal syntax and gsettings'
// "@as" empty-array annotation are stripped, and the remaining keysym is
// translated to its printable form. Anything left that the keysym table
// does not know is returned as-is.
func Parse(raw string, tbl *keysym.Table) (modIndex int, key string) {
	modIndex = Detect(raw)

	stripped := raw
	if tok := Modifiers()[modIndex].Token; tok != "" {
		stripped = strings.ReplaceAll(stripped, tok, "")
	}
	stripped = literalStripper.Replace(stripped)
	stripped = strings.ReplaceAll(stripped, "@as", "")
	stripped = strings.TrimSpace(stripped)

	if stripped == "" {
		return modIndex, ""
	}
	return modIndex, tbl.Key(stripped)
}

// Format renders a modifier index and printable key as the single-element
// accelerator literal gsettings stores. The key is translated through the
// keysym table; unknown keys pass through unchanged.
func Format(modIndex int, key string, tbl *keysym.Table) string {
	mods := Modifiers()
	if modIndex < 0 || modIndex >= len(mods) {
		modIndex = 0
	}
	return "['" + mods[modIndex].Token + tbl.Sym(key) + "']"
}

// FirstChar truncates a form entry to its first character. Editor fields
// accept exactly one key; everything past the first rune is discarded.
func FirstChar(s string) string {
	if s == "" {
		return s
	}
	return string([]rune(s)[:1])
}

// Binding is the editable state of one slot as shown in an editor row.
type Binding struct {
	Slot     Slot
	Modifier int    // index into Modifiers
	Key      string // printable key
	Raw      string // last value read from the settings store
}

// NewBindings builds zeroed editor rows for the given slots.
func NewBindings(slots []Slot) []*Binding {
	bindings := make([]*Binding, len(slots))
	for i, s := range slots {
		bindings[i] = &Binding{Slot: s}
	}
	return bindings
}

// Load refreshes the binding from a freshly read stored value.
func (b *Binding) Load(raw string, tbl *keysym.Table) {
	b.Raw = raw
	b.Modifier, b.Key = Parse(raw, tbl)
}

// Value renders the binding's editable fields as a stored accelerator value.
func (b *Binding) Value(tbl *keysym.Table) string {
	return Format(b.Modifier, b.Key, tbl)
}
