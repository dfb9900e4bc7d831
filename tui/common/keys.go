package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Up       key.Binding // arrow only — scrolls in the detail view
	Down     key.Binding
	Prev     key.Binding // k — previous item
	Next     key.Binding // j — next item
	Enter    key.Binding // open post / drill into the selected subtree
	Parent   key.Binding // u — back out one thread level
	Back     key.Binding // esc — deselect / leave detail
	NextPage key.Binding // n — next post, next listing page
	PrevPage key.Binding // p
	Refresh  key.Binding
	Preview  key.Binding // i — toggle inline image preview
	Open     key.Binding // o — open link or image externally
	Yank     key.Binding // y — copy link to clipboard
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "parent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Preview: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "preview"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank link"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
