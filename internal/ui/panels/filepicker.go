package panels

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/ps3decui/internal/ui/border"
	"github.com/justinpbarnett/ps3decui/internal/ui/text"
)

// FilePicker is the modal used to choose the executable or the ISO image.
type FilePicker struct {
	picker filepicker.Model
	field  Field
	width  int
	height int
}

// NewFilePicker opens a picker for field, starting next to current when
// that location still exists.
func NewFilePicker(field Field, current string, screenW, screenH int) (*FilePicker, tea.Cmd) {
	fp := filepicker.New()
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	if field == FieldISO {
		fp.AllowedTypes = []string{".iso", ".ISO"}
	}
	fp.CurrentDirectory = startDir(current)

	p := &FilePicker{picker: fp, field: field}
	p.SetSize(screenW, screenH)
	return p, p.picker.Init()
}

func startDir(current string) string {
	if current != "" {
		dir := filepath.Dir(current)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func (p *FilePicker) Field() Field { return p.field }

func (p *FilePicker) SetSize(screenW, screenH int) {
	p.width = max(screenW*80/100, 40)
	p.height = max(screenH*80/100, 10)
	// border (2) + directory line (1)
	p.picker.Height = max(p.height-3, 3)
}

func (p *FilePicker) Update(msg tea.Msg) (*FilePicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c", "q":
			return nil, func() tea.Msg { return CloseModalMsg{} }
		}
	}

	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	if ok, path := p.picker.DidSelectFile(msg); ok {
		field := p.field
		return nil, func() tea.Msg { return PathSelectedMsg{Field: field, Path: path} }
	}
	return p, cmd
}

func (p *FilePicker) View() string {
	title := "Select ps3dec executable"
	if p.field == FieldISO {
		title = "Select ISO image"
	}
	dir := text.TruncateLeft(p.picker.CurrentDirectory, p.width-4)
	content := dir + "\n" + p.picker.View()
	kbs := []border.Keybind{
		{Key: "Enter", Label: " select"},
		{Key: "←", Label: " up"},
		{Key: "Esc", Label: " cancel"},
	}
	return border.RenderPanel(title, content, kbs, p.width, p.height)
}
