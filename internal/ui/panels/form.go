package panels

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/links"
	"github.com/justinpbarnett/ps3decui/internal/ui/border"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
	"github.com/justinpbarnett/ps3decui/internal/ui/text"
)

// Field identifies a row of the settings form.
type Field int

const (
	FieldExecutable Field = iota
	FieldISO
	FieldKey
	FieldThreads
	FieldAuto
	numFields
)

const labelWidth = 20

var fieldLabels = [numFields]string{
	FieldExecutable: "ps3dec executable",
	FieldISO:        "ISO file",
	FieldKey:        "Decryption key",
	FieldThreads:    "Thread count",
	FieldAuto:       "Auto key detection",
}

// Form edits the persisted configuration. The owner compares Config() with
// its copy after each Update to decide whether to persist.
type Form struct {
	cfg      config.Config
	focus    Field
	keyInput textinput.Model
	// threadsBuf holds the digits typed into the thread count. It is only
	// meaningful while threadsTyping is set; the stored count is the clamped
	// buffer, or MinThreads while the buffer is empty.
	threadsBuf    string
	threadsTyping bool
	width         int
	height        int
}

func NewForm(cfg config.Config) Form {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "32 hex digits"
	ti.CharLimit = 128
	ti.SetValue(cfg.DecryptionKey)

	cfg.ThreadCount = config.ClampThreads(cfg.ThreadCount)
	return Form{cfg: cfg, keyInput: ti}
}

func (f Form) Config() config.Config { return f.cfg }

func (f Form) Focus() Field { return f.focus }

// SetPath stores a picked path into the executable or ISO field.
func (f *Form) SetPath(field Field, path string) {
	switch field {
	case FieldExecutable:
		f.cfg.ExecutablePath = path
	case FieldISO:
		f.cfg.ISOPath = path
	}
}

// Captures reports whether the focused field consumes msg as input, in which
// case the owner must not treat it as a global shortcut.
func (f Form) Captures(msg tea.KeyMsg) bool {
	switch f.focus {
	case FieldKey:
		return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	case FieldThreads:
		switch msg.String() {
		case "+", "=", "-", "_":
			return true
		}
		return isDigit(msg)
	}
	return false
}

func (f *Form) SetSize(w, h int) {
	f.width = w
	f.height = h
	f.keyInput.Width = max(w-labelWidth-6, 8)
}

// setFocus moves the focus and returns the key input's cursor blink command
// when the key field gains focus.
func (f *Form) setFocus(field Field) tea.Cmd {
	f.focus = (field + numFields) % numFields
	f.stopTyping()
	if f.focus == FieldKey {
		return f.keyInput.Focus()
	}
	f.keyInput.Blur()
	return nil
}

func (f *Form) stopTyping() {
	f.threadsTyping = false
	f.threadsBuf = ""
}

func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Blink messages; ignored by the input while it is blurred.
		var cmd tea.Cmd
		f.keyInput, cmd = f.keyInput.Update(msg)
		return f, cmd
	}

	switch keyMsg.String() {
	case "tab", "down":
		return f, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f, f.setFocus(f.focus - 1)
	}

	switch f.focus {
	case FieldExecutable, FieldISO:
		switch keyMsg.String() {
		case "enter", " ":
			field := f.focus
			return f, func() tea.Msg { return OpenPickerMsg{Field: field} }
		}
	case FieldKey:
		var cmd tea.Cmd
		f.keyInput, cmd = f.keyInput.Update(msg)
		f.cfg.DecryptionKey = f.keyInput.Value()
		return f, cmd
	case FieldThreads:
		f.updateThreads(keyMsg)
	case FieldAuto:
		switch keyMsg.String() {
		case "enter", " ", "x":
			f.cfg.Auto = !f.cfg.Auto
		}
	}
	return f, nil
}

func (f *Form) updateThreads(msg tea.KeyMsg) {
	switch msg.String() {
	case "+", "=", "right", "l":
		f.stopTyping()
		f.cfg.ThreadCount = config.ClampThreads(f.cfg.ThreadCount + 1)
		return
	case "-", "_", "left", "h":
		f.stopTyping()
		f.cfg.ThreadCount = config.ClampThreads(f.cfg.ThreadCount - 1)
		return
	case "backspace":
		if !f.threadsTyping {
			f.threadsBuf = strconv.Itoa(f.cfg.ThreadCount)
			f.threadsTyping = true
		}
		if f.threadsBuf != "" {
			f.threadsBuf = f.threadsBuf[:len(f.threadsBuf)-1]
		}
	default:
		if !isDigit(msg) {
			return
		}
		if !f.threadsTyping {
			f.threadsBuf = ""
			f.threadsTyping = true
		}
		f.threadsBuf = strings.TrimLeft(f.threadsBuf+string(msg.Runes[0]), "0")
	}

	n, _ := strconv.Atoi(f.threadsBuf) // digits only; "" is 0
	f.cfg.ThreadCount = config.ClampThreads(n)
	if n > config.MaxThreads {
		f.threadsBuf = strconv.Itoa(config.MaxThreads)
	}
}

func isDigit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9'
}

func (f Form) View() string {
	innerW := f.width - 2
	valueW := max(innerW-labelWidth-2, 4)

	var b strings.Builder
	for field := Field(0); field < numFields; field++ {
		b.WriteString(f.renderLabel(field))
		b.WriteString(f.renderValue(field, valueW))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderLinks())

	kbs := []border.Keybind{
		{Key: "Tab", Label: " next field"},
		{Key: "Enter", Label: " browse/toggle"},
		{Key: "^R", Label: " run"},
	}
	return border.RenderPanel("PS3Dec", b.String(), kbs, f.width, f.height)
}

func (f Form) renderLabel(field Field) string {
	if field == f.focus {
		return styles.FocusedLabelStyle.Render("› " + fieldLabels[field])
	}
	return styles.FieldLabelStyle.Render("  " + fieldLabels[field])
}

func (f Form) renderValue(field Field, width int) string {
	switch field {
	case FieldExecutable:
		return renderPath(f.cfg.ExecutablePath, width)
	case FieldISO:
		return renderPath(f.cfg.ISOPath, width)
	case FieldKey:
		if f.cfg.Auto && f.focus != FieldKey {
			return styles.NoteStyle.Render("not used with automatic detection")
		}
		return f.keyInput.View()
	case FieldThreads:
		n := strconv.Itoa(f.cfg.ThreadCount)
		if f.threadsTyping && f.focus == FieldThreads {
			n = f.threadsBuf + "_"
		}
		v := styles.TextPrimaryStyle.Render("‹ " + n + " ›")
		return v + "   " + styles.NoteStyle.Render("too many threads will hang ps3dec")
	case FieldAuto:
		box := "[ ]"
		if f.cfg.Auto {
			box = "[x]"
		}
		return styles.TextPrimaryStyle.Render(box) + "     " + styles.NoteStyle.Render("keys/ in ps3dec directory")
	}
	return ""
}

func renderPath(path string, width int) string {
	if path == "" {
		return styles.TextDimStyle.Render("not set, press Enter to browse")
	}
	return styles.TextPrimaryStyle.Render(text.TruncateLeft(path, width))
}

func renderLinks() string {
	parts := make([]string, 0, len(links.Defaults))
	for i, l := range links.Defaults {
		parts = append(parts, border.RenderKeybind(border.Keybind{Key: strconv.Itoa(i + 1), Label: " " + l.Label}))
	}
	return "  " + styles.TextSecondaryStyle.Render("Links") + "  " + strings.Join(parts, "  ")
}
