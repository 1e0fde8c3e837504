package layout

// Layout holds the computed cell dimensions for all panels.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	FormWidth  int
	FormHeight int

	LogWidth  int
	LogHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 60
	MinHeight = 18

	// FormHeight fits the five settings rows, the links row and the border.
	FormHeight = 9
)

// Calculate stacks the form, the log panel and a one-row status bar.
// The log panel takes whatever height remains.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	l.FormWidth = termWidth
	l.FormHeight = FormHeight
	l.LogWidth = termWidth
	l.LogHeight = termHeight - FormHeight - 1
	l.StatusBarWidth = termWidth
	return l
}
