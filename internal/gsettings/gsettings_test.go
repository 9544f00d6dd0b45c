package gsettings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skoglund/wskeys/internal/bind"
)

func newTestClient(run runFunc) *Client {
	return &Client{timeout: time.Second, run: run, log: zerolog.Nop()}
}

func TestBinding(t *testing.T) {
	var got []string
	c := newTestClient(func(ctx context.Context, args ...string) ([]byte, error) {
		got = args
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the command context")
		}
		return []byte("['<Super>1']\n"), nil
	})

	slot := bind.Slot{Action: bind.ActionSwitch, Number: 1}
	val, err := c.Binding(context.Background(), slot)
	if err != nil {
		t.Fatalf("Binding: %v", err)
	}
	if val != "['<Super>1']" {
		t.Errorf("value = %q, want %q", val, "['<Super>1']")
	}
	want := []string{"get", "org.gnome.desktop.wm.keybindings", "switch-to-workspace-1"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestSetBinding(t *testing.T) {
	var got []string
	c := newTestClient(func(_ context.Context, args ...string) ([]byte, error) {
		got = args
		return nil, nil
	})

	slot := bind.Slot{Action: bind.ActionMove, Number: 3}
	if err := c.SetBinding(context.Background(), slot, "['<Shift><Super>3']"); err != nil {
		t.Fatalf("SetBinding: %v", err)
	}
	want := []string{"set", "org.gnome.desktop.wm.keybindings", "move-to-workspace-3", "['<Shift><Super>3']"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestBindingError(t *testing.T) {
	fail := errors.New("no such key")
	c := newTestClient(func(_ context.Context, _ ...string) ([]byte, error) {
		return nil, fail
	})

	slot := bind.Slot{Action: bind.ActionAppSwitch, Number: 2}
	_, err := c.Binding(context.Background(), slot)
	if !errors.Is(err, fail) {
		t.Fatalf("error = %v, want wrapped %v", err, fail)
	}
	if !strings.Contains(err.Error(), "org.gnome.shell.keybindings") {
		t.Errorf("error %q does not name the schema", err)
	}
	if !strings.Contains(err.Error(), "switch-to-application-2") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestNumWorkspaces(t *testing.T) {
	c := newTestClient(func(_ context.Context, _ ...string) ([]byte, error) {
		return []byte("4\n"), nil
	})
	n, err := c.NumWorkspaces(context.Background())
	if err != nil {
		t.Fatalf("NumWorkspaces: %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
}

func TestNumWorkspacesBadOutput(t *testing.T) {
	c := newTestClient(func(_ context.Context, _ ...string) ([]byte, error) {
		return []byte("uint32 4\n"), nil
	})
	if _, err := c.NumWorkspaces(context.Background()); err == nil {
		t.Fatal("expected an error for non-numeric output")
	}
}

func TestSetNumWorkspaces(t *testing.T) {
	var got []string
	c := newTestClient(func(_ context.Context, args ...string) ([]byte, error) {
		got = args
		return nil, nil
	})
	if err := c.SetNumWorkspaces(context.Background(), 6); err != nil {
		t.Fatalf("SetNumWorkspaces: %v", err)
	}
	want := []string{"set", "org.gnome.desktop.wm.preferences", "num-workspaces", "6"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestDisableAppSwitchers(t *testing.T) {
	var calls [][]string
	c := newTestClient(func(_ context.Context, args ...string) ([]byte, error) {
		calls = append(calls, args)
		return nil, nil
	})

	if err := c.DisableAppSwitchers(context.Background()); err != nil {
		t.Fatalf("DisableAppSwitchers: %v", err)
	}
	if len(calls) != 9 {
		t.Fatalf("got %d calls, want 9", len(calls))
	}
	for i, args := range calls {
		want := []string{"set", "org.gnome.shell.keybindings",
			"switch-to-application-" + string(rune('1'+i)), `[""]`}
		if strings.Join(args, " ") != strings.Join(want, " ") {
			t.Errorf("call %d args = %v, want %v", i, args, want)
		}
	}
}

func TestDisableAppSwitchersStopsOnError(t *testing.T) {
	fail := errors.New("backend gone")
	var calls int
	c := newTestClient(func(_ context.Context, _ ...string) ([]byte, error) {
		calls++
		if calls == 3 {
			return nil, fail
		}
		return nil, nil
	})

	err := c.DisableAppSwitchers(context.Background())
	if !errors.Is(err, fail) {
		t.Fatalf("error = %v, want wrapped %v", err, fail)
	}
	if calls != 3 {
		t.Errorf("made %d calls, want 3", calls)
	}
}
