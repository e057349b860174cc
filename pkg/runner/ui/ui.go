package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/store"
	teaui "tableflip.dev/remap/pkg/tui/app"
)

// ErrNotTerminal is returned when stdout can not host the full screen UI.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, try `remap show`")

// UI runs the interactive mindmap editor.
type UI struct {
	Config  store.Config
	Service *app.Service

	// Terminal reports whether the UI can take over the screen. Defaults to
	// checking stdout.
	Terminal func() bool
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	if !d.terminal() {
		return ErrNotTerminal
	}
	delay := store.DefaultNotifyDelay
	if d.Config != nil {
		delay = d.Config.NotifyDelay()
	}
	return teaui.Run(d.Service, delay)
}

func (d *UI) terminal() bool {
	if d.Terminal != nil {
		return d.Terminal()
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
