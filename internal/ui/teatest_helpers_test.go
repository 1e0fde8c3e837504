package ui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/process"
	"github.com/justinpbarnett/ps3decui/internal/runtime"
)

const waitDuration = 10 * time.Second

// appAdapter wraps the App (value receiver model) and skips Init so the
// cursor blink loop does not keep the test program busy.
type appAdapter struct {
	app App
}

func newTestAppAdapter(t *testing.T, cfg config.Config) *appAdapter {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	a := NewApp(path, cfg, process.NewLauncher(runtime.NewPS3Dec(), nil), nil)
	a.openURL = func(string) error { return nil }
	a.copyText = func(string) error { return nil }
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
