package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/ps3decui/internal/process"
	"github.com/justinpbarnett/ps3decui/internal/ui/border"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
)

// maxVisibleLines caps how much of the log the viewport holds. The full log
// is still kept for copying.
const maxVisibleLines = 10000

// LogView is the read-only output panel. It holds the log buffer for the
// current run: cleared on launch, appended to by relay lines.
type LogView struct {
	viewport viewport.Model
	lines    []string
	// rendered holds styled copies of the newest lines, at most
	// 2*maxVisibleLines before it is compacted.
	rendered []string
	follow   bool
	width    int
	height   int
}

func NewLogView() LogView {
	return LogView{viewport: viewport.New(0, 0), follow: true}
}

// Reset clears the buffer at the start of a run.
func (l *LogView) Reset() {
	l.lines = nil
	l.rendered = nil
	l.follow = true
	l.Refresh()
}

// Append adds one line. Call Refresh once a batch has been appended.
func (l *LogView) Append(line string) {
	l.lines = append(l.lines, line)

	if strings.HasPrefix(line, process.StderrPrefix) {
		line = styles.StderrLineStyle.Render(line)
	}
	l.rendered = append(l.rendered, line)
	if len(l.rendered) > 2*maxVisibleLines {
		l.rendered = append([]string(nil), l.rendered[len(l.rendered)-maxVisibleLines:]...)
	}
}

// Text returns the buffer as written: each line followed by a newline.
func (l LogView) Text() string {
	if len(l.lines) == 0 {
		return ""
	}
	return strings.Join(l.lines, "\n") + "\n"
}

func (l LogView) LineCount() int { return len(l.lines) }

// Refresh re-renders the viewport content, keeping the tail in view while
// following.
func (l *LogView) Refresh() {
	visible := l.rendered[max(len(l.rendered)-maxVisibleLines, 0):]
	l.viewport.SetContent(strings.Join(visible, "\n"))
	if l.follow {
		l.viewport.GotoBottom()
	}
}

func (l *LogView) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.viewport.Width = max(w-2, 0)
	l.viewport.Height = max(h-2, 0)
	l.Refresh()
}

func (l LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "home":
			l.follow = false
			l.viewport.GotoTop()
			return l, nil
		case "end":
			l.follow = true
			l.viewport.GotoBottom()
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	l.follow = l.viewport.AtBottom()
	return l, cmd
}

func (l LogView) View() string {
	kbs := []border.Keybind{
		{Key: "y", Label: " copy"},
		{Key: "PgUp/PgDn", Label: " scroll"},
		{Key: "?", Label: " help"},
	}
	return border.RenderPanel("Output", l.viewport.View(), kbs, l.width, l.height)
}
