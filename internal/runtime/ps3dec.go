package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// PS3Dec drives the ps3dec command-line decrypter.
type PS3Dec struct{}

func NewPS3Dec() *PS3Dec {
	return &PS3Dec{}
}

// BuildArgs renders the ps3dec argument list. The order is fixed by the
// tool: --iso <path> [--auto | --dk <key>] --tc <n> --skip.
func (p *PS3Dec) BuildArgs(opts RunOptions) []string {
	args := []string{"--iso", opts.ISOPath}
	if opts.Auto {
		args = append(args, "--auto")
	} else {
		args = append(args, "--dk", opts.Key)
	}
	args = append(args, "--tc", strconv.Itoa(opts.ThreadCount), "--skip")
	return args
}

func (p *PS3Dec) Start(ctx context.Context, opts RunOptions) (*Process, error) {
	cmd := exec.CommandContext(ctx, opts.Executable, p.BuildArgs(opts)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &Process{
		PID:    cmd.Process.Pid,
		Cmd:    cmd,
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// CommandLine renders the invocation the way it is echoed into the log.
func CommandLine(executable string, args []string) string {
	return executable + " " + strings.Join(args, " ")
}
