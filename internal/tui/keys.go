package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
)

// keyMap holds the chat view bindings
type keyMap struct {
	Submit   key.Binding
	Newline  key.Binding
	Theme    key.Binding
	CopySQL  key.Binding
	Quit     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Send"),
		),
		// Most terminals cannot report shift+enter; alt+enter and ctrl+j
		// are the portable forms.
		Newline: key.NewBinding(
			key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
			key.WithHelp("Alt+Enter", "Newline"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "Theme"),
		),
		CopySQL: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy SQL"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc", "Quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "Scroll"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("pgdown"),
		),
	}
}

// shortcuts returns the bindings shown in the status bar
func (k keyMap) shortcuts() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.Theme, k.CopySQL, k.Quit}
}

// textareaKeyMap moves newline insertion off enter so enter can submit
func textareaKeyMap(k keyMap) textarea.KeyMap {
	km := textarea.DefaultKeyMap
	km.InsertNewline = k.Newline
	return km
}
