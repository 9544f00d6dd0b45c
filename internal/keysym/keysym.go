// Package keysym translates between the characters a user types and the X
// keysym names GNOME stores inside accelerator strings.
package keysym

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed gnome-keysyms.txt
var bundled string

// Table holds the two lookup directions built from one keysym listing.
type Table struct {
	keyToSym map[string]string
	symToKey map[string]string
}

// Load parses the keysym table bundled into the binary.
func Load() *Table {
	return Parse(bundled)
}

// Parse builds a Table from keysym listing text. Each line with at least
// three whitespace-separated columns contributes one pair: the first column
// is a keysym name, the third its printable form. Blank lines, comment
// lines, and lines without a printable column are skipped.
func Parse(src string) *Table {
	t := &Table{
		keyToSym: make(map[string]string),
		symToKey: make(map[string]string),
	}

	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		sym, key := fields[0], fields[2]
		t.keyToSym[key] = sym
		t.symToKey[sym] = key
	}
	return t
}

// Sym returns the keysym name for a typed key. Keys without an entry pass
// through unchanged, which covers letters and digits whose keysym name is
// the character itself as well as anything the table does not know.
func (t *Table) Sym(key string) string {
	if sym, ok := t.keyToSym[key]; ok {
		return sym
	}
	return key
}

// Key returns the printable form of a keysym name, or the name itself when
// the table has no entry for it.
func (t *Table) Key(sym string) string {
	if key, ok := t.symToKey[sym]; ok {
		return key
	}
	return sym
}

// Len reports how many keysym pairs were loaded.
func (t *Table) Len() int {
	return len(t.symToKey)
}
