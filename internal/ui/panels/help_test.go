package panels

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type stubKeys struct{ run, quit key.Binding }

func (k stubKeys) ShortHelp() []key.Binding  { return []key.Binding{k.run, k.quit} }
func (k stubKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.run, k.quit}} }

func newStubKeys() stubKeys {
	return stubKeys{
		run:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^R", "run ps3dec")),
		quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func TestHelpContent(t *testing.T) {
	h := NewHelpOverlay(newStubKeys())
	view := h.View()

	if !contains(view, "run ps3dec") {
		t.Error("expected run binding in help")
	}
	if !contains(view, "quit") {
		t.Error("expected quit binding in help")
	}
}

func TestHelpBorder(t *testing.T) {
	view := NewHelpOverlay(newStubKeys()).View()
	if !contains(view, "Keybinds") {
		t.Error("expected 'Keybinds' title in border")
	}
	if !contains(view, "╭") || !contains(view, "╰") {
		t.Error("expected border characters")
	}
}

func TestHelpClose(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("?")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	}
	for _, k := range keys {
		_, cmd := NewHelpOverlay(newStubKeys()).Update(k)
		if cmd == nil {
			t.Fatalf("expected command on %q", k.String())
		}
		if _, ok := cmd().(CloseModalMsg); !ok {
			t.Errorf("expected CloseModalMsg on %q", k.String())
		}
	}
}

func TestHelpIgnoresOtherKeys(t *testing.T) {
	_, cmd := NewHelpOverlay(newStubKeys()).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}

func TestHelpListsLinkCaptions(t *testing.T) {
	view := NewHelpOverlay(newStubKeys()).View()
	for _, want := range []string{"Redump decryption keys", "PlayStation 3 redumps", "Recommended VPN", "Source & support"} {
		if !contains(view, want) {
			t.Errorf("expected link caption %q in help", want)
		}
	}
	if !contains(view, "[1]") || !contains(view, "Aldos Tools") {
		t.Error("expected link key next to its caption")
	}
}
