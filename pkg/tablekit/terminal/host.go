// Package terminal shows tablekit controllers in a terminal using Bubble Tea.
//
//	nav := tablekit.NewNavigator(terminal.New())
//
// Each show pass runs one Bubble Tea program. Up/down (or k/j) move the
// cursor, enter selects, esc goes back, / filters rows by fuzzy match and
// ctrl+c or q cancels the whole presentation.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// Host is a tablekit.Host backed by a terminal.
type Host struct {
	input      io.Reader
	output     io.Writer
	altScreen  bool
	requireTTY bool
	keys       *KeyMap
}

// Option configures a Host.
type Option func(*Host)

// WithInput reads key presses from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(h *Host) {
		h.input = r
	}
}

// WithOutput renders to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		h.output = w
	}
}

// WithAltScreen overrides the alt_screen setting of the config file.
func WithAltScreen(enabled bool) Option {
	return func(h *Host) {
		h.altScreen = enabled
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(h *Host) {
		h.keys = &keys
	}
}

// WithoutTTYCheck lets the host render to outputs that are not terminals.
func WithoutTTYCheck() Option {
	return func(h *Host) {
		h.requireTTY = false
	}
}

// New creates a terminal host on stdin and stdout.
func New(opts ...Option) *Host {
	h := &Host{
		input:      os.Stdin,
		output:     os.Stdout,
		altScreen:  internal.GetConfig().Terminal.AltScreen,
		requireTTY: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Show runs one interactive pass over c and reports how it ended.
func (h *Host) Show(c *tablekit.Controller, resume tablekit.Cursor) (tablekit.Interaction, error) {
	if h.requireTTY && !isTerminal(h.output) {
		return tablekit.Interaction{}, fmt.Errorf("terminal: output is not a terminal: %w", tablekit.ErrNotPresentable)
	}

	keys := DefaultKeyMap()
	if h.keys != nil {
		keys = *h.keys
	}

	m := newModel(c, resume, keys, newStyles(internal.GetTheme()))

	opts := []tea.ProgramOption{tea.WithInput(h.input), tea.WithOutput(h.output)}
	if h.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	c.OnReload(func() {
		p.Send(reloadMsg{})
	})
	defer c.OnReload(nil)

	internal.GetInternalLogger().Debug("Showing controller in terminal",
		"title", c.Title(), "resume", resume.IndexPath.String())

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return tablekit.Interaction{}, tablekit.ErrCancelled
		}
		return tablekit.Interaction{}, tablekit.NewInfrastructureError("run_program", err)
	}

	return resultOf(final)
}

func resultOf(final tea.Model) (tablekit.Interaction, error) {
	fm, ok := final.(model)
	if !ok {
		return tablekit.Interaction{}, tablekit.NewInfrastructureError("run_program",
			fmt.Errorf("unexpected model %T", final))
	}
	if fm.quit {
		return tablekit.Interaction{}, tablekit.ErrCancelled
	}
	if !fm.done {
		return tablekit.Back(fm.cursor()), nil
	}
	return fm.result, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var _ tablekit.Host = (*Host)(nil)
