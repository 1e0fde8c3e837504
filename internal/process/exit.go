package process

import (
	"strconv"
	"strings"
)

const (
	// ExitPrefix marks the terminal relay message; the exit code follows it.
	ExitPrefix = "__EXIT_CODE__"

	// StderrPrefix tags lines read from the child's standard error.
	StderrPrefix = "ERR: "

	// UnknownExitCode is reported by ParseExit when the sentinel trailer is
	// not an integer.
	UnknownExitCode = -2
)

func exitMessage(code int) string {
	return ExitPrefix + strconv.Itoa(code)
}

// ParseExit reports whether msg is the terminal sentinel and, if so, the
// exit code it carries.
func ParseExit(msg string) (code int, ok bool) {
	rest, found := strings.CutPrefix(msg, ExitPrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return UnknownExitCode, true
	}
	return n, true
}
