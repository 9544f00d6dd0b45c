// Package gui is the desktop front-end: a single window of form rows,
// one per keybinding slot, writing straight through to gsettings.
package gui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skoglund/wskeys/internal/bind"
	"github.com/skoglund/wskeys/internal/keysym"
)

const (
	windowTitle  = "GNOME Workspace Shortcuts"
	windowWidth  = 1280
	windowHeight = 720
)

// Settings is the slice of the gsettings client the window needs.
type Settings interface {
	Binding(ctx context.Context, slot bind.Slot) (string, error)
	SetBinding(ctx context.Context, slot bind.Slot, value string) error
	NumWorkspaces(ctx context.Context) (int, error)
	SetNumWorkspaces(ctx context.Context, n int) error
	DisableAppSwitchers(ctx context.Context) error
}

// UI owns the window and the per-slot form rows.
type UI struct {
	app      fyne.App
	window   fyne.Window
	settings Settings
	table    *keysym.Table
	log      zerolog.Logger

	wsEntry *widget.Entry
	rows    []*slotRow
}

// slotRow binds one slot's widgets to its editable state. The converted
// entry always shows the value an overwrite would store; the raw entry
// shows what the store currently holds.
type slotRow struct {
	binding   *bind.Binding
	modifier  *widget.Select
	key       *widget.Entry
	converted *widget.Entry
	raw       *widget.Entry
}

// New builds the window against the real Fyne driver.
func New(st Settings, tbl *keysym.Table) *UI {
	return newUI(app.New(), st, tbl)
}

func newUI(a fyne.App, st Settings, tbl *keysym.Table) *UI {
	u := &UI{
		app:      a,
		settings: st,
		table:    tbl,
		log:      log.With().Str("component", "gui").Logger(),
	}
	u.window = u.app.NewWindow(windowTitle)
	u.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	u.window.SetContent(u.build())
	return u
}

// Run loads current values and blocks until the window closes.
func (u *UI) Run() {
	u.refreshAll()
	u.window.ShowAndRun()
}

func modifierNames() []string {
	mods := bind.Modifiers()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return names
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

func (u *UI) build() fyne.CanvasObject {
	content := container.NewVBox()

	lastAction := bind.Action(-1)
	var grid *fyne.Container
	for _, b := range bind.NewBindings(bind.AllSlots()) {
		if b.Slot.Action != lastAction {
			lastAction = b.Slot.Action
			content.Add(widget.NewLabelWithStyle(sectionTitle(lastAction),
				fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
			grid = container.NewGridWithColumns(6)
			content.Add(grid)
		}

		row := u.newSlotRow(b)
		u.rows = append(u.rows, row)

		grid.Add(widget.NewLabel(b.Slot.Label()))
		grid.Add(row.modifier)
		grid.Add(row.key)
		grid.Add(row.converted)
		grid.Add(row.raw)
		grid.Add(widget.NewButton("Overwrite", func() { u.overwrite(row) }))
	}

	return container.NewBorder(u.buildTopBar(), nil, nil, nil,
		container.NewVScroll(content))
}

func (u *UI) newSlotRow(b *bind.Binding) *slotRow {
	row := &slotRow{binding: b}

	row.modifier = widget.NewSelect(modifierNames(), func(string) {
		u.updateConverted(row)
	})

	row.key = widget.NewEntry()
	row.key.OnChanged = func(s string) {
		if first := bind.FirstChar(s); first != s {
			row.key.SetText(first)
			return
		}
		u.updateConverted(row)
	}

	row.converted = widget.NewEntry()
	row.converted.Disable()

	row.raw = widget.NewEntry()
	row.raw.Disable()

	u.updateConverted(row)
	return row
}

// updateConverted recomputes the value an overwrite would store.
func (u *UI) updateConverted(row *slotRow) {
	idx := row.modifier.SelectedIndex()
	if idx < 0 {
		idx = 0
	}
	row.converted.SetText(bind.Format(idx, row.key.Text, u.table))
}

func (u *UI) buildTopBar() fyne.CanvasObject {
	u.wsEntry = widget.NewEntry()

	return container.NewHBox(
		widget.NewLabel("Number of workspaces"),
		u.wsEntry,
		widget.NewButton("Overwrite", u.saveWorkspaces),
		widget.NewSeparator(),
		widget.NewButton("Disable switch-to-application shortcuts", u.confirmDisableAppSwitchers),
	)
}

func (u *UI) refreshAll() {
	ctx := context.Background()
	for _, row := range u.rows {
		if err := u.refreshRow(ctx, row); err != nil {
			u.fail(err)
			return
		}
	}
	n, err := u.settings.NumWorkspaces(ctx)
	if err != nil {
		u.fail(err)
		return
	}
	u.wsEntry.SetText(strconv.Itoa(n))
}

func (u *UI) refreshRow(ctx context.Context, row *slotRow) error {
	raw, err := u.settings.Binding(ctx, row.binding.Slot)
	if err != nil {
		return err
	}
	row.binding.Load(raw, u.table)
	row.raw.SetText(raw)
	row.modifier.SetSelectedIndex(row.binding.Modifier)
	// Truncation and conversion run through the entry's change handler.
	row.key.SetText(row.binding.Key)
	return nil
}

// overwrite stores the row's converted value, then re-reads the slot so
// the displayed state is whatever the store actually kept.
func (u *UI) overwrite(row *slotRow) {
	value := row.converted.Text

	ctx := context.Background()
	if err := u.settings.SetBinding(ctx, row.binding.Slot, value); err != nil {
		u.fail(err)
		return
	}
	u.log.Debug().Str("slot", row.binding.Slot.Key()).Str("value", value).Msg("binding written")

	if err := u.refreshRow(ctx, row); err != nil {
		u.fail(err)
	}
}

func (u *UI) saveWorkspaces() {
	n, err := strconv.Atoi(strings.TrimSpace(u.wsEntry.Text))
	if err != nil {
		u.fail(fmt.Errorf("workspace count must be a number"))
		return
	}

	ctx := context.Background()
	if err := u.settings.SetNumWorkspaces(ctx, n); err != nil {
		u.fail(err)
		return
	}
	current, err := u.settings.NumWorkspaces(ctx)
	if err != nil {
		u.fail(err)
		return
	}
	u.wsEntry.SetText(strconv.Itoa(current))
}

func (u *UI) confirmDisableAppSwitchers() {
	dialog.ShowConfirm("Disable application switchers",
		"Clear all switch-to-application shortcuts so Super+digit switches workspaces?",
		func(ok bool) {
			if !ok {
				return
			}
			if err := u.settings.DisableAppSwitchers(context.Background()); err != nil {
				u.fail(err)
				return
			}
			u.refreshAll()
		}, u.window)
}

func (u *UI) fail(err error) {
	u.log.Error().Err(err).Msg("settings operation failed")
	dialog.ShowError(err, u.window)
}
