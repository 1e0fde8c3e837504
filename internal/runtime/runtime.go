package runtime

import (
	"context"
	"io"
	"os/exec"
)

// Runtime starts the external decryption tool.
type Runtime interface {
	BuildArgs(opts RunOptions) []string
	Start(ctx context.Context, opts RunOptions) (*Process, error)
}

type RunOptions struct {
	Executable  string
	ISOPath     string
	Key         string
	Auto        bool
	ThreadCount int
}

// Process is a started child. Stdout and Stderr must be read to EOF before
// Wait is called.
type Process struct {
	PID    int
	Cmd    *exec.Cmd
	Stdout io.ReadCloser
	Stderr io.ReadCloser
}

// Wait reaps the child and returns its exit code, or -1 when none is
// available (killed by a signal, wait failure).
func (p *Process) Wait() int {
	if p.Cmd == nil {
		return -1
	}
	_ = p.Cmd.Wait()
	if p.Cmd.ProcessState == nil {
		return -1
	}
	return p.Cmd.ProcessState.ExitCode()
}
