package panels

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/ps3decui/internal/links"
	"github.com/justinpbarnett/ps3decui/internal/ui/border"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
)

type HelpOverlay struct {
	help   help.Model
	keys   help.KeyMap
	width  int
	height int
}

func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return &HelpOverlay{help: h, keys: keys, width: 64, height: 18}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

// renderLinkCaptions lists what each link key opens.
func renderLinkCaptions() string {
	rows := make([]string, 0, len(links.Defaults))
	for i, l := range links.Defaults {
		kb := border.RenderKeybind(border.Keybind{Key: strconv.Itoa(i + 1), Label: " " + l.Label})
		rows = append(rows, " "+kb+"  "+styles.NoteStyle.Render(l.Caption))
	}
	return strings.Join(rows, "\n")
}

func (h HelpOverlay) View() string {
	h.help.Width = h.width - 4
	content := "\n" + h.help.View(h.keys) + "\n\n" + renderLinkCaptions()
	kbs := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	return border.RenderPanel("Keybinds", content, kbs, h.width, h.height)
}
