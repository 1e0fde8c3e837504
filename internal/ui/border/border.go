package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// Keybind is a hint drawn into a panel's bottom border: [y] copy.
type Keybind struct {
	Key   string
	Label string
}

func RenderKeybind(kb Keybind) string {
	return styles.KeyStyle.Render("["+kb.Key+"]") + styles.LabelStyle.Render(kb.Label)
}

// edge renders one horizontal border with an optional inline label:
// ╭─ label ───╮. The label is dropped when it does not fit.
func edge(left, right, label string, width int, bs lipgloss.Style) string {
	inner := width - 2
	if label == "" || lipgloss.Width(label)+3 > inner {
		return bs.Render(left + strings.Repeat(horizBar, inner) + right)
	}
	fill := inner - lipgloss.Width(label) - 3
	return bs.Render(left+horizBar+" ") + label + bs.Render(" "+strings.Repeat(horizBar, fill)+right)
}

// fitKeybinds joins as many keybinds as fit in width, in order.
func fitKeybinds(keybinds []Keybind, width int) string {
	var parts []string
	used := 0
	for _, kb := range keybinds {
		r := RenderKeybind(kb)
		w := lipgloss.Width(r)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > width {
			break
		}
		parts = append(parts, r)
		used += w
	}
	return strings.Join(parts, "  ")
}

var borderStyle = lipgloss.NewStyle().Foreground(styles.Border)

// RenderPanel draws content inside a rounded border of exactly width x
// height cells. Content is cropped or padded to fit; keybinds that fit are
// drawn into the bottom border.
func RenderPanel(title, content string, keybinds []Keybind, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	bs := borderStyle
	innerW, innerH := width-2, height-2

	var label string
	if title != "" {
		label = styles.TitleStyle.Render(title)
	}

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	crop := lipgloss.NewStyle().MaxWidth(innerW)
	rows := make([]string, 0, height)
	rows = append(rows, edge(cornerTL, cornerTR, label, width, bs))
	for _, line := range lines {
		if lipgloss.Width(line) > innerW {
			line = crop.Render(line)
		}
		if pad := innerW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, bs.Render(vertBar)+line+bs.Render(vertBar))
	}

	rows = append(rows, edge(cornerBL, cornerBR, fitKeybinds(keybinds, innerW-3), width, bs))
	return strings.Join(rows, "\n")
}
