package process

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeRuntime records Start calls and returns a canned process or error.
type fakeRuntime struct {
	runtime.PS3Dec
	starts int
	proc   *runtime.Process
	err    error
}

func (f *fakeRuntime) Start(_ context.Context, _ runtime.RunOptions) (*runtime.Process, error) {
	f.starts++
	return f.proc, f.err
}

func validConfig() config.Config {
	return config.Config{
		ExecutablePath: "/opt/ps3dec",
		ISOPath:        "/iso/game.iso",
		DecryptionKey:  "00112233445566778899aabbccddeeff",
		ThreadCount:    4,
	}
}

// drain collects every relay message until the channel closes.
func drain(t *testing.T, s *Session) []string {
	t.Helper()
	var out []string
	timeout := time.After(10 * time.Second)
	for {
		select {
		case msg, ok := <-s.Messages():
			if !ok {
				return out
			}
			out = append(out, msg)
		case <-timeout:
			t.Fatalf("relay did not finish, got so far: %q", out)
		}
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}
	path := filepath.Join(t.TempDir(), "ps3dec")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestValidateOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"empty target wins over everything", func(c *config.Config) {
			c.ISOPath, c.ExecutablePath, c.DecryptionKey = "", "", ""
		}, MsgSelectTarget},
		{"empty executable", func(c *config.Config) {
			c.ExecutablePath, c.DecryptionKey = "", ""
		}, MsgSelectExecutable},
		{"manual mode without key", func(c *config.Config) {
			c.DecryptionKey = ""
		}, MsgEnterKey},
		{"auto mode without key", func(c *config.Config) {
			c.DecryptionKey = ""
			c.Auto = true
		}, ""},
		{"complete", func(*config.Config) {}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Error())
		})
	}
}

func TestLaunchValidationSpawnsNothing(t *testing.T) {
	t.Parallel()
	rt := &fakeRuntime{}
	l := NewLauncher(rt, nil)

	for _, cfg := range []config.Config{
		{ExecutablePath: "/opt/ps3dec", ThreadCount: 1, Auto: true},
		{ISOPath: "game.iso", ThreadCount: 1, Auto: true},
		{ISOPath: "game.iso", ExecutablePath: "/opt/ps3dec", ThreadCount: 1},
	} {
		s, err := l.Launch(cfg)
		assert.Nil(t, s)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}
	assert.Zero(t, rt.starts, "no process may be spawned on validation failure")
}

func TestLaunchSpawnFailureRelaysSentinel(t *testing.T) {
	defer goleak.VerifyNone(t)

	rt := &fakeRuntime{err: errors.New("permission denied")}
	s, err := NewLauncher(rt, nil).Launch(validConfig())
	require.NoError(t, err)
	require.NotNil(t, s)

	msgs := drain(t, s)
	require.Equal(t, []string{"Failed to start ps3dec: permission denied", "__EXIT_CODE__-1"}, msgs)
	assert.Zero(t, s.PID())
}

func TestLaunchMissingExecutable(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := validConfig()
	cfg.ExecutablePath = filepath.Join(t.TempDir(), "nope")
	s, err := NewLauncher(runtime.NewPS3Dec(), nil).Launch(cfg)
	require.NoError(t, err)

	msgs := drain(t, s)
	require.Len(t, msgs, 2)
	assert.True(t, strings.HasPrefix(msgs[0], "Failed to start ps3dec: "), msgs[0])
	code, ok := ParseExit(msgs[1])
	assert.True(t, ok)
	assert.Equal(t, -1, code)
}

func TestLaunchCommandLine(t *testing.T) {
	rt := &fakeRuntime{err: errors.New("x")}
	cfg := validConfig()
	cfg.Auto = true
	cfg.ThreadCount = 999

	s, err := NewLauncher(rt, nil).Launch(cfg)
	require.NoError(t, err)
	drain(t, s)

	assert.Equal(t, "/opt/ps3dec --iso /iso/game.iso --auto --tc 256 --skip", s.CommandLine())
	assert.NotEmpty(t, s.ID())
}

func TestRelayStdoutAndStderr(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := validConfig()
	cfg.ExecutablePath = writeScript(t, "echo A\necho B 1>&2\nexit 0\n")
	s, err := NewLauncher(runtime.NewPS3Dec(), nil).Launch(cfg)
	require.NoError(t, err)
	assert.Positive(t, s.PID())

	msgs := drain(t, s)
	require.Len(t, msgs, 3)
	assert.ElementsMatch(t, []string{"A", "ERR: B"}, msgs[:2])
	assert.Equal(t, "__EXIT_CODE__0", msgs[2], "sentinel must be the last message")
}

func TestRelayPreservesOrderWithinStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := validConfig()
	cfg.ExecutablePath = writeScript(t, `i=0
while [ $i -lt 500 ]; do
  echo "out $i"
  echo "err $i" 1>&2
  i=$((i+1))
done
exit 3
`)
	s, err := NewLauncher(runtime.NewPS3Dec(), nil).Launch(cfg)
	require.NoError(t, err)

	msgs := drain(t, s)
	require.Len(t, msgs, 1001)

	var out, errs []string
	for _, m := range msgs[:1000] {
		if rest, ok := strings.CutPrefix(m, StderrPrefix); ok {
			errs = append(errs, rest)
		} else {
			out = append(out, m)
		}
	}
	require.Len(t, out, 500)
	require.Len(t, errs, 500)
	for i := range 500 {
		assert.Equal(t, "out "+strconv.Itoa(i), out[i])
		assert.Equal(t, "err "+strconv.Itoa(i), errs[i])
	}

	code, ok := ParseExit(msgs[1000])
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestRelayKilledBySignal(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := validConfig()
	cfg.ExecutablePath = writeScript(t, "echo before\nkill -9 $$\n")
	s, err := NewLauncher(runtime.NewPS3Dec(), nil).Launch(cfg)
	require.NoError(t, err)

	msgs := drain(t, s)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "__EXIT_CODE__-1", msgs[len(msgs)-1])
}

func TestRelayReadErrorKeepsOtherStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	rt := &fakeRuntime{proc: &runtime.Process{
		Stdout: io.NopCloser(iotest.ErrReader(errors.New("broken pipe"))),
		Stderr: io.NopCloser(strings.NewReader("warn 1\nwarn 2\n")),
	}}
	s, err := NewLauncher(rt, nil).Launch(validConfig())
	require.NoError(t, err)

	msgs := drain(t, s)
	require.Len(t, msgs, 4)
	assert.ElementsMatch(t, []string{"Error reading stdout: broken pipe", "ERR: warn 1", "ERR: warn 2"}, msgs[:3])
	assert.Equal(t, "__EXIT_CODE__-1", msgs[3], "no command means no exit code")
}

func TestRelayOverlongLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	long := strings.Repeat("x", 2*1024*1024)
	rt := &fakeRuntime{proc: &runtime.Process{
		Stdout: io.NopCloser(strings.NewReader("ok\n" + long + "\nafter\n")),
		Stderr: io.NopCloser(strings.NewReader("")),
	}}
	s, err := NewLauncher(rt, nil).Launch(validConfig())
	require.NoError(t, err)

	msgs := drain(t, s)
	require.Len(t, msgs, 3)
	assert.Equal(t, "ok", msgs[0])
	assert.Contains(t, msgs[1], "Error reading stdout:")
	assert.Equal(t, "__EXIT_CODE__-1", msgs[2])
}
