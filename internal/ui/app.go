package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/links"
	"github.com/justinpbarnett/ps3decui/internal/process"
	"github.com/justinpbarnett/ps3decui/internal/ui/clipboard"
	"github.com/justinpbarnett/ps3decui/internal/ui/layout"
	"github.com/justinpbarnett/ps3decui/internal/ui/panels"
	"github.com/justinpbarnett/ps3decui/internal/ui/styles"
)

const statusRunning = "Running ps3dec..."

type App struct {
	cfg      config.Config
	cfgPath  string
	launcher *process.Launcher
	logger   *slog.Logger

	// session is the current run. Launching replaces it; the previous child
	// is not stopped and its remaining output is ignored.
	session *process.Session

	openURL  func(string) error
	copyText func(string) error

	width       int
	height      int
	layout      layout.Layout
	form        panels.Form
	logView     panels.LogView
	statusBar   panels.StatusBar
	picker      *panels.FilePicker
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	ready       bool
}

func NewApp(cfgPath string, cfg config.Config, launcher *process.Launcher, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg.ThreadCount = config.ClampThreads(cfg.ThreadCount)
	return App{
		cfg:       cfg,
		cfgPath:   cfgPath,
		launcher:  launcher,
		logger:    logger,
		openURL:   links.Open,
		copyText:  clipboard.Write,
		form:      panels.NewForm(cfg),
		logView:   panels.NewLogView(),
		statusBar: panels.NewStatusBar(),
		keys:      DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("PS3Dec GUI"), a.form.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case RelayMsg:
		return a.handleRelay(msg)

	case CloseModalMsg:
		a.picker = nil
		a.helpOverlay = nil
		return a, nil

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case panels.OpenPickerMsg:
		current := a.cfg.ExecutablePath
		if msg.Field == panels.FieldISO {
			current = a.cfg.ISOPath
		}
		var cmd tea.Cmd
		a.picker, cmd = panels.NewFilePicker(msg.Field, current, a.width, a.height)
		return a, cmd

	case panels.PathSelectedMsg:
		a.picker = nil
		a.form.SetPath(msg.Field, msg.Path)
		a.syncConfig()
		return a, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.logView, cmd = a.logView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything else (directory listings, cursor blink) belongs to the
	// picker or the form.
	var cmds []tea.Cmd
	if a.picker != nil {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.helpOverlay != nil {
		h, cmd := a.helpOverlay.Update(msg)
		a.helpOverlay = &h
		return a, cmd
	}
	if a.picker != nil {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd
	}

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.form.Captures(msg) {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Run):
			return a, a.launch()
		case key.Matches(msg, a.keys.Copy):
			return a, a.copyLog()
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay(a.keys)
			return a, nil
		case key.Matches(msg, a.keys.Links):
			return a, a.openLink(int(msg.Runes[0] - '1'))
		case key.Matches(msg, a.keys.Scroll):
			var cmd tea.Cmd
			a.logView, cmd = a.logView.Update(msg)
			return a, cmd
		}
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	a.syncConfig()
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	full := lipgloss.JoinVertical(lipgloss.Left, a.form.View(), a.logView.View(), a.statusBar.View())

	var modal string
	switch {
	case a.helpOverlay != nil:
		modal = a.helpOverlay.View()
	case a.picker != nil:
		modal = a.picker.View()
	}
	if modal != "" {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}

// Config returns the configuration as currently edited.
func (a App) Config() config.Config { return a.cfg }

// Status returns the status line text.
func (a App) Status() string { return a.statusBar.Status() }

// LogText returns the log buffer of the current run.
func (a App) LogText() string { return a.logView.Text() }

func (a *App) launch() tea.Cmd {
	sess, err := a.launcher.Launch(a.cfg)
	if err != nil {
		a.statusBar.SetStatus(err.Error(), panels.LevelWarning)
		return nil
	}

	a.session = sess
	a.logView.Reset()
	a.logView.Append("Running command: " + sess.CommandLine())
	a.logView.Refresh()
	a.statusBar.SetStatus(statusRunning, panels.LevelInfo)
	return waitForRelay(sess)
}

// waitForRelay blocks off the UI goroutine until the session has a message.
func waitForRelay(s *process.Session) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-s.Messages()
		if !ok {
			return RelayMsg{SessionID: s.ID(), Closed: true}
		}
		return RelayMsg{SessionID: s.ID(), Line: line}
	}
}

// handleRelay consumes the delivered line plus whatever else is already
// queued, without blocking, then re-arms the wait.
func (a App) handleRelay(msg RelayMsg) (tea.Model, tea.Cmd) {
	if a.session == nil || msg.SessionID != a.session.ID() || msg.Closed {
		return a, nil
	}

	a.consume(msg.Line)
	for {
		select {
		case line, ok := <-a.session.Messages():
			if !ok {
				a.logView.Refresh()
				return a, nil
			}
			a.consume(line)
		default:
			a.logView.Refresh()
			return a, waitForRelay(a.session)
		}
	}
}

func (a *App) consume(line string) {
	code, ok := process.ParseExit(line)
	if !ok {
		a.logView.Append(line)
		return
	}

	switch {
	case code == process.UnknownExitCode:
		a.statusBar.SetStatus("ps3dec exited with unknown code", panels.LevelError)
	case code == 0:
		a.statusBar.SetStatus("ps3dec exited with code 0", panels.LevelSuccess)
	default:
		a.statusBar.SetStatus(fmt.Sprintf("ps3dec exited with code %d", code), panels.LevelError)
	}
}

func (a *App) copyLog() tea.Cmd {
	if err := a.copyText(a.logView.Text()); err != nil {
		a.statusBar.SetStatus(fmt.Sprintf("Clipboard copy failed: %v", err), panels.LevelError)
		return nil
	}
	a.statusBar.SetFlash(fmt.Sprintf("Copied %d lines to clipboard", a.logView.LineCount()), panels.LevelSuccess)
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func (a *App) openLink(i int) tea.Cmd {
	if i < 0 || i >= len(links.Defaults) {
		return nil
	}
	url, open, logger := links.Defaults[i].URL, a.openURL, a.logger
	return func() tea.Msg {
		if err := open(url); err != nil {
			logger.Debug("open link failed", "url", url, "err", err)
		}
		return nil
	}
}

// syncConfig persists the form's configuration whenever it changed.
// Persistence is best effort: failures are logged and otherwise ignored.
func (a *App) syncConfig() {
	cfg := a.form.Config()
	if cfg == a.cfg {
		return
	}
	a.cfg = cfg
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		a.logger.Debug("config save failed", "path", a.cfgPath, "err", err)
	}
}

func (a *App) propagateSizes() {
	l := a.layout
	a.form.SetSize(l.FormWidth, l.FormHeight)
	a.logView.SetSize(l.LogWidth, l.LogHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
	if a.picker != nil {
		a.picker.SetSize(a.width, a.height)
	}
}
