package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
	"github.com/justinpbarnett/ps3decui/internal/ui/text"
)

const flashDurationVal = 3 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// Level controls the icon and color of a status or flash message.
type Level int

const (
	LevelInfo    Level = iota // blue ●
	LevelSuccess              // green ✓
	LevelWarning              // yellow ⚠
	LevelError                // red ✗
)

func (lv Level) render(msg string) string {
	var icon string
	var color lipgloss.TerminalColor
	switch lv {
	case LevelSuccess:
		icon, color = "✓", styles.StatusSuccess
	case LevelError:
		icon, color = "✗", styles.StatusError
	case LevelWarning:
		icon, color = "⚠", styles.StatusWarning
	default:
		icon, color = "●", styles.StatusRunning
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + msg)
}

type StatusBar struct {
	width       int
	status      string
	statusLevel Level
	flash       string
	flashLevel  Level
	flashUntil  time.Time
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Status is the persistent status line: validation result, running, exit code.
func (s StatusBar) Status() string { return s.status }

func (s *StatusBar) SetStatus(msg string, level Level) {
	s.status = msg
	s.statusLevel = level
}

func (s *StatusBar) SetFlash(msg string, level Level) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = LevelInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")
	left := " " + styles.TextSecondaryStyle.Render("ps3decui "+Version)
	right := styles.TextSecondaryStyle.Render("?:help") + " "

	// Messages share what is left after the version, the hint and one
	// space of gap. Each rendered message costs its icon and a separator.
	room := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	msgRoom := func() int { return room - lipgloss.Width(sep) - 2 }

	if s.status != "" && msgRoom() > 0 {
		part := sep + s.statusLevel.render(text.Truncate(s.status, msgRoom()))
		left += part
		room -= lipgloss.Width(part)
	}
	if s.flash != "" && time.Now().Before(s.flashUntil) && msgRoom() > 0 {
		left += sep + s.flashLevel.render(text.Truncate(s.flash, msgRoom()))
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
