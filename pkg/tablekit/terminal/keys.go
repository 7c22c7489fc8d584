package terminal

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// KeyMap lists the bindings the terminal host reacts to.
// It satisfies help.KeyMap so the footer can be drawn by bubbles/help.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Back     key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap builds the key map from the active configuration, with
// help text in the active language.
func DefaultKeyMap() KeyMap {
	cfg := internal.GetConfig().Terminal

	selectKeys := cfg.SelectKeys
	if len(selectKeys) == 0 {
		selectKeys = internal.DefaultConfig().Terminal.SelectKeys
	}
	backKeys := cfg.BackKeys
	if len(backKeys) == 0 {
		backKeys = internal.DefaultConfig().Terminal.BackKeys
	}

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", internal.Localize(internal.MsgHelpMove)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", internal.Localize(internal.MsgHelpMove)),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
		),
		Select: key.NewBinding(
			key.WithKeys(selectKeys...),
			key.WithHelp("enter", internal.Localize(internal.MsgHelpSelect)),
		),
		Back: key.NewBinding(
			key.WithKeys(backKeys...),
			key.WithHelp("esc", internal.Localize(internal.MsgHelpBack)),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", internal.Localize(internal.MsgHelpFilter)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", internal.Localize(internal.MsgHelpQuit)),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.Back, k.Filter, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Back, k.Filter, k.Quit},
	}
}
