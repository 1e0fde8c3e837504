package process

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/justinpbarnett/ps3decui/internal/runtime"
	"golang.org/x/sync/errgroup"
)

// Session is one ps3dec invocation. Its relay channel carries stdout lines,
// StderrPrefix-tagged stderr lines and finally one ExitPrefix sentinel, after
// which it is closed.
type Session struct {
	id          string
	commandLine string
	pid         int
	messages    chan string
}

func newSession(commandLine string, bufSize int) *Session {
	if bufSize <= 0 {
		bufSize = defaultRelayBuffer
	}
	return &Session{
		id:          uuid.NewString(),
		commandLine: commandLine,
		messages:    make(chan string, bufSize),
	}
}

func (s *Session) ID() string { return s.id }

// CommandLine is the full invocation, echoed as the first log line.
func (s *Session) CommandLine() string { return s.commandLine }

// PID is zero when the child could not be started.
func (s *Session) PID() int { return s.pid }

func (s *Session) Messages() <-chan string { return s.messages }

func (s *Session) fail(err error) {
	s.messages <- fmt.Sprintf("Failed to start ps3dec: %v", err)
	s.messages <- exitMessage(-1)
	close(s.messages)
}

// relay forwards both streams, then reaps the child and sends the sentinel.
// Readers are joined before Wait so every buffered line precedes the
// sentinel.
func (s *Session) relay(proc *runtime.Process, logger *slog.Logger) {
	var g errgroup.Group
	g.Go(func() error {
		s.forward(proc.Stdout, "", "stdout", logger)
		return nil
	})
	g.Go(func() error {
		s.forward(proc.Stderr, StderrPrefix, "stderr", logger)
		return nil
	})
	_ = g.Wait()

	code := proc.Wait()
	logger.Info("ps3dec exited", "code", code)
	s.messages <- exitMessage(code)
	close(s.messages)
}

func (s *Session) forward(r io.Reader, prefix, stream string, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	for scanner.Scan() {
		s.messages <- prefix + scanner.Text()
	}

	if err := scanner.Err(); err != nil {
		logger.Warn("stream read failed", "stream", stream, "err", err)
		s.messages <- fmt.Sprintf("Error reading %s: %v", stream, err)
		// Keep the pipe drained so the child cannot stall on a full buffer.
		_, _ = io.Copy(io.Discard, r)
	}
}
