// Package gsettings shells out to the gsettings command-line tool to read
// and write GNOME keybinding configuration. All state lives in the
// settings store; this package holds none of its own.
package gsettings

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skoglund/wskeys/internal/bind"
)

const defaultTimeout = 3 * time.Second

type runFunc func(ctx context.Context, args ...string) ([]byte, error)

// Client runs gsettings commands with a per-call timeout.
type Client struct {
	timeout time.Duration
	run     runFunc
	log     zerolog.Logger
}

// New returns a client that executes the real gsettings binary.
func New() *Client {
	return &Client{
		timeout: defaultTimeout,
		run:     runGsettings,
		log:     log.With().Str("component", "gsettings").Logger(),
	}
}

func runGsettings(ctx context.Context, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, "gsettings", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, schema, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.run(ctx, "get", schema, key)
	if err != nil {
		return "", fmt.Errorf("gsettings get %s %s: %w", schema, key, err)
	}
	value := strings.TrimSpace(string(out))
	c.log.Debug().Str("schema", schema).Str("key", key).Str("value", value).Msg("get")
	return value, nil
}

func (c *Client) set(ctx context.Context, schema, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.run(ctx, "set", schema, key, value); err != nil {
		return fmt.Errorf("gsettings set %s %s: %w", schema, key, err)
	}
	c.log.Debug().Str("schema", schema).Str("key", key).Str("value", value).Msg("set")
	return nil
}

// Binding reads the stored accelerator value of a slot.
func (c *Client) Binding(ctx context.Context, slot bind.Slot) (string, error) {
	return c.get(ctx, slot.Schema(), slot.Key())
}

// SetBinding writes a stored accelerator value to a slot.
func (c *Client) SetBinding(ctx context.Context, slot bind.Slot, value string) error {
	return c.set(ctx, slot.Schema(), slot.Key(), value)
}

// NumWorkspaces reads the configured workspace count.
func (c *Client) NumWorkspaces(ctx context.Context) (int, error) {
	raw, err := c.get(ctx, bind.SchemaPreferences, "num-workspaces")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing num-workspaces %q: %w", raw, err)
	}
	return n, nil
}

// SetNumWorkspaces writes the workspace count. Range enforcement is left to
// the settings store's schema; its errors propagate unchanged.
func (c *Client) SetNumWorkspaces(ctx context.Context, n int) error {
	return c.set(ctx, bind.SchemaPreferences, "num-workspaces", strconv.Itoa(n))
}

// DisableAppSwitchers clears every switch-to-application accelerator so the
// Super+digit combinations are free for workspace switching.
func (c *Client) DisableAppSwitchers(ctx context.Context) error {
	for _, s := range bind.AppSwitchSlots() {
		if err := c.SetBinding(ctx, s, bind.Disabled); err != nil {
			return err
		}
	}
	return nil
}
