package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gitti/internal/config"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, k.Down))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("J")}, k.CommitDown))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, k.ScrollDown))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, k.CommitDown))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit))
}

func TestFromConfig_CustomKeys(t *testing.T) {
	kb := config.DefaultConfig().Keybindings
	kb.Quit = []string{"x"}
	kb.Up = []string{"up", "p"}

	k := FromConfig(kb)
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, k.Quit))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, k.Quit))
	require.Equal(t, "↑/p", k.Up.Help().Key)
}

func TestHelpGroupsCoverEveryBinding(t *testing.T) {
	k := DefaultKeyMap()
	count := 0
	for _, group := range k.FullHelp() {
		count += len(group)
	}
	require.Equal(t, 18, count)
	require.Len(t, k.ShortHelp(), 6)
}
