// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/yourusername/gitti/internal/config"
)

// KeyMap defines the keybindings of the viewer.
type KeyMap struct {
	// Files
	Up   key.Binding
	Down key.Binding

	// Commits
	CommitUp   key.Binding
	CommitDown key.Binding

	// Diff pane
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding

	// Branch picker
	Branch key.Binding
	Select key.Binding
	Cancel key.Binding

	// General
	ToggleMouse key.Binding
	CopyPath    key.Binding
	CopyCommit  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return FromConfig(config.DefaultConfig().Keybindings)
}

// FromConfig builds the key map from configured key lists.
func FromConfig(c config.KeybindingsConfig) KeyMap {
	return KeyMap{
		Up:          binding(c.Up, "previous file"),
		Down:        binding(c.Down, "next file"),
		CommitUp:    binding(c.CommitUp, "previous commit"),
		CommitDown:  binding(c.CommitDown, "next commit"),
		ScrollUp:    binding(c.ScrollUp, "scroll diff up"),
		ScrollDown:  binding(c.ScrollDown, "scroll diff down"),
		PageUp:      binding(c.PageUp, "page diff up"),
		PageDown:    binding(c.PageDown, "page diff down"),
		Top:         binding(c.Top, "diff top"),
		Bottom:      binding(c.Bottom, "diff bottom"),
		Branch:      binding(c.Branch, "pick branch"),
		Select:      binding(c.Select, "select branch"),
		Cancel:      binding(c.Cancel, "close"),
		ToggleMouse: binding(c.ToggleMouse, "toggle mouse"),
		CopyPath:    binding(c.CopyPath, "copy file path"),
		CopyCommit:  binding(c.CopyCommit, "copy commit id"),
		Help:        binding(c.Help, "toggle help"),
		Quit:        binding(c.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

var arrows = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if a, ok := arrows[k]; ok {
			k = a
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// ShortHelp is the status bar hint list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.CommitDown, k.ScrollDown, k.Branch, k.Help, k.Quit}
}

// FullHelp groups every binding for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.CommitUp, k.CommitDown},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Branch, k.Select, k.Cancel},
		{k.ToggleMouse, k.CopyPath, k.CopyCommit, k.Help, k.Quit},
	}
}
