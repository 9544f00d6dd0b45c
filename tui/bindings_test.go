package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/keysym"
)

// fakeSettings serves canned gsettings values and records writes.
type fakeSettings struct {
	values     map[string]string
	workspaces int
	writes     map[string]string
	disabled   bool
	err        error
}

func newFakeSettings() *fakeSettings {
	f := &fakeSettings{
		values:     make(map[string]string),
		workspaces: 4,
		writes:     make(map[string]string),
	}
	for _, s := range bind.AllSlots() {
		f.values[s.Key()] = bind.Disabled
	}
	f.values["switch-to-workspace-1"] = "['<Super>1']"
	f.values["move-to-workspace-2"] = "['<Shift><Super>2']"
	return f
}

func (f *fakeSettings) Binding(_ context.Context, slot bind.Slot) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[slot.Key()], nil
}

func (f *fakeSettings) SetBinding(_ context.Context, slot bind.Slot, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[slot.Key()] = value
	f.writes[slot.Key()] = value
	return nil
}

func (f *fakeSettings) NumWorkspaces(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.workspaces, nil
}

func (f *fakeSettings) SetNumWorkspaces(_ context.Context, n int) error {
	if f.err != nil {
		return f.err
	}
	f.workspaces = n
	return nil
}

func (f *fakeSettings) DisableAppSwitchers(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.disabled = true
	for _, s := range bind.AppSwitchSlots() {
		f.values[s.Key()] = bind.Disabled
	}
	return nil
}

func newTestModel(t *testing.T) (BindingsModel, *fakeSettings) {
	t.Helper()
	f := newFakeSettings()
	return NewBindingsModel(f, keysym.Load()), f
}

func TestNewBindingsModelLoadsRows(t *testing.T) {
	m, _ := newTestModel(t)

	if len(m.rows) != 29 {
		t.Fatalf("expected 29 rows, got %d", len(m.rows))
	}
	if m.err != "" {
		t.Fatalf("unexpected error: %s", m.err)
	}
	if m.workspaces != 4 {
		t.Errorf("workspaces = %d, want 4", m.workspaces)
	}

	first := m.rows[0]
	if first.Slot.Key() != "switch-to-workspace-1" {
		t.Fatalf("first row slot = %s", first.Slot.Key())
	}
	if first.Key != "1" {
		t.Errorf("first row key = %q, want %q", first.Key, "1")
	}
	if bind.Modifiers()[first.Modifier].Name != "SUPER" {
		t.Errorf("first row modifier = %s, want SUPER",
			bind.Modifiers()[first.Modifier].Name)
	}
}

func TestNewBindingsModelLoadError(t *testing.T) {
	f := newFakeSettings()
	f.err = errors.New("dconf unreachable")
	m := NewBindingsModel(f, keysym.Load())

	if m.err == "" {
		t.Error("expected load error to be recorded")
	}
}

func TestNavigationDown(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != 1 {
		t.Errorf("expected cursor=1, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("expected cursor=2, got %d", m.cursor)
	}

	m.cursor = len(m.rows) - 1
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != len(m.rows)-1 {
		t.Errorf("expected cursor clamped at %d, got %d", len(m.rows)-1, m.cursor)
	}
}

func TestNavigationUp(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursor = 2

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 1 {
		t.Errorf("expected cursor=1, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("expected cursor=0, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Errorf("expected cursor=0 (clamped), got %d", m.cursor)
	}
}

func TestEnterOpensEditForm(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != bindingsViewEdit {
		t.Fatal("expected edit view after enter")
	}
	if bind.Modifiers()[m.editModifier].Name != "SUPER" {
		t.Errorf("edit modifier = %s, want SUPER", bind.Modifiers()[m.editModifier].Name)
	}
	if m.keyInput.Value() != "1" {
		t.Errorf("key input = %q, want %q", m.keyInput.Value(), "1")
	}
}

func TestEditFormTabTogglesFocus(t *testing.T) {
	m, _ := newTestModel(t)
	m.view = bindingsViewEdit
	m.focusIndex = 0

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusIndex != 1 {
		t.Errorf("expected focusIndex=1, got %d", m.focusIndex)
	}
	if !m.keyInput.Focused() {
		t.Error("expected key input focused")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusIndex != 0 {
		t.Errorf("expected focusIndex=0 (wrapped), got %d", m.focusIndex)
	}
	if m.keyInput.Focused() {
		t.Error("expected key input blurred")
	}
}

func TestEditFormCyclesModifier(t *testing.T) {
	m, _ := newTestModel(t)
	m.view = bindingsViewEdit
	m.focusIndex = 0
	m.editModifier = 0

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.editModifier != 1 {
		t.Errorf("expected modifier index 1, got %d", m.editModifier)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	want := len(bind.Modifiers()) - 1
	if m.editModifier != want {
		t.Errorf("expected modifier index %d (wrapped), got %d", want, m.editModifier)
	}
}

func TestEditFormSaveWritesValue(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.editModifier = 3 // SUPER
	m.keyInput.SetValue("5")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != bindingsViewList {
		t.Fatal("expected list view after save")
	}
	if got := f.writes["switch-to-workspace-1"]; got != "['<Super>5']" {
		t.Errorf("wrote %q, want %q", got, "['<Super>5']")
	}
	if m.rows[0].Raw != "['<Super>5']" {
		t.Errorf("row raw = %q, want re-read value", m.rows[0].Raw)
	}
	if !strings.Contains(m.status, "switch-to-workspace-1") {
		t.Errorf("status %q does not name the slot", m.status)
	}
}

func TestEditFormSaveError(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	f.err = errors.New("write refused")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != bindingsViewEdit {
		t.Error("expected to stay on edit form after write error")
	}
	if m.err == "" {
		t.Error("expected error to be recorded")
	}
}

func TestEditFormEscCancels(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.view != bindingsViewList {
		t.Error("expected list view after esc")
	}
	if len(f.writes) != 0 {
		t.Errorf("expected no writes, got %v", f.writes)
	}
}

func TestResetDisablesSlot(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if got := f.writes["switch-to-workspace-1"]; got != bind.Disabled {
		t.Errorf("wrote %q, want %q", got, bind.Disabled)
	}
	if m.rows[0].Raw != bind.Disabled {
		t.Errorf("row raw = %q, want %q", m.rows[0].Raw, bind.Disabled)
	}
}

func TestWorkspacesFormSave(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if m.view != bindingsViewWorkspaces {
		t.Fatal("expected workspaces view")
	}
	if m.wsInput.Value() != "4" {
		t.Errorf("input preloaded with %q, want current count", m.wsInput.Value())
	}

	m.wsInput.SetValue("6")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != bindingsViewList {
		t.Error("expected list view after save")
	}
	if f.workspaces != 6 {
		t.Errorf("workspaces = %d, want 6", f.workspaces)
	}
	if m.workspaces != 6 {
		t.Errorf("model workspaces = %d, want 6", m.workspaces)
	}
}

func TestWorkspacesFormRejectsNonNumber(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m.wsInput.SetValue("many")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != bindingsViewWorkspaces {
		t.Error("expected to stay on workspaces form")
	}
	if m.err == "" {
		t.Error("expected validation error")
	}
}

func TestConfirmDisableAppSwitchers(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if m.view != bindingsViewConfirm {
		t.Fatal("expected confirm view")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if !f.disabled {
		t.Error("expected DisableAppSwitchers call")
	}
	if m.view != bindingsViewList {
		t.Error("expected list view after confirm")
	}
}

func TestConfirmCancelKeepsAppSwitchers(t *testing.T) {
	m, f := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	if f.disabled {
		t.Error("expected no DisableAppSwitchers call")
	}
	if m.view != bindingsViewList {
		t.Error("expected list view after cancel")
	}
}

func TestHelpKeySwitchesScreen(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if cmd == nil {
		t.Fatal("expected command from ? press")
	}
	msg := cmd()
	switchMsg, ok := msg.(switchScreenMsg)
	if !ok {
		t.Fatalf("expected switchScreenMsg, got %T", msg)
	}
	if switchMsg.target != screenHelp {
		t.Errorf("expected screenHelp, got %d", switchMsg.target)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected command from q press")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestViewEmptyBeforeSize(t *testing.T) {
	m, _ := newTestModel(t)
	if m.View() != "" {
		t.Error("expected empty view before window size")
	}
}

func TestViewListShowsSections(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	view := m.viewList()
	for _, section := range []string{
		"Switch to workspace",
		"Move window to workspace",
		"Switch to application",
	} {
		if !strings.Contains(view, section) {
			t.Errorf("view missing section %q", section)
		}
	}
}

func TestViewListWindowsAroundCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	m.cursor = len(m.rows) - 1

	view := m.viewList()
	if !strings.Contains(view, "Switch to application 9") {
		t.Error("expected window to follow the cursor to the last row")
	}
	if strings.Contains(view, "Switch to workspace 1 ") {
		t.Error("expected early rows scrolled out of a short window")
	}
}

func TestViewRendersAfterSize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.View() == "" {
		t.Error("expected non-empty view after window size")
	}
}
