package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)

	FieldLabelStyle   = lipgloss.NewStyle().Foreground(TextSecondary).Width(20)
	FocusedLabelStyle = lipgloss.NewStyle().Foreground(FocusedField).Bold(true).Width(20)
	NoteStyle         = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	KeyStyle   = lipgloss.NewStyle().Foreground(KeybindKey).Bold(true)
	LabelStyle = lipgloss.NewStyle().Foreground(KeybindLabel)

	StderrLineStyle = lipgloss.NewStyle().Foreground(StderrLine)
)
