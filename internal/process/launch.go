package process

import (
	"context"
	"log/slog"

	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/runtime"
)

// Status messages for launch validation, checked in this order.
const (
	MsgSelectTarget     = "select a target file"
	MsgSelectExecutable = "select the executable"
	MsgEnterKey         = "enter a decryption key"
)

// ValidationError is returned by Launch when the configuration is incomplete.
// Nothing has been spawned when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate reports the first missing input that blocks a launch.
func Validate(cfg config.Config) error {
	switch {
	case cfg.ISOPath == "":
		return &ValidationError{Reason: MsgSelectTarget}
	case cfg.ExecutablePath == "":
		return &ValidationError{Reason: MsgSelectExecutable}
	case cfg.NeedsKey() && cfg.DecryptionKey == "":
		return &ValidationError{Reason: MsgEnterKey}
	}
	return nil
}

const defaultRelayBuffer = 256

type Launcher struct {
	rt      runtime.Runtime
	logger  *slog.Logger
	bufSize int
}

func NewLauncher(rt runtime.Runtime, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Launcher{rt: rt, logger: logger, bufSize: defaultRelayBuffer}
}

// Launch validates cfg and starts ps3dec. Once validation passes a session is
// always returned: spawn failures are delivered on the session's relay
// channel followed by an exit sentinel of -1.
func (l *Launcher) Launch(cfg config.Config) (*Session, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	opts := runtime.RunOptions{
		Executable:  cfg.ExecutablePath,
		ISOPath:     cfg.ISOPath,
		Key:         cfg.DecryptionKey,
		Auto:        cfg.Auto,
		ThreadCount: config.ClampThreads(cfg.ThreadCount),
	}
	s := newSession(runtime.CommandLine(opts.Executable, l.rt.BuildArgs(opts)), l.bufSize)
	logger := l.logger.With("session", s.ID())

	// No cancellation: a superseded session keeps its child running.
	proc, err := l.rt.Start(context.Background(), opts)
	if err != nil {
		logger.Warn("ps3dec failed to start", "cmd", s.CommandLine(), "err", err)
		s.fail(err)
		return s, nil
	}

	s.pid = proc.PID
	logger.Info("ps3dec started", "cmd", s.CommandLine(), "pid", proc.PID)
	go s.relay(proc, logger)
	return s, nil
}
