package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

// stub swaps the native writer and OSC52 sink for the duration of a test.
func stub(t *testing.T, native func(string) error) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origNative, origOut := writeNative, osc52Out
	writeNative, osc52Out = native, &buf
	t.Cleanup(func() { writeNative, osc52Out = origNative, origOut })
	return &buf
}

func TestWritePrefersNative(t *testing.T) {
	var got string
	buf := stub(t, func(s string) error { got = s; return nil })

	if err := Write("log contents"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got != "log contents" {
		t.Errorf("native clipboard got %q", got)
	}
	if buf.Len() != 0 {
		t.Errorf("OSC52 should not be used when native succeeds, wrote %q", buf.String())
	}
}

func TestWriteFallsBackToOSC52(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "hello"},
		{"multiline", "Running command: ps3dec --iso a.iso\nERR: oops\n"},
		{"unicode", "こんにちは"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := stub(t, func(string) error { return errors.New("no clipboard utility") })

			if err := Write(tt.input); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			want := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(tt.input)) + "\x07"
			if buf.String() != want {
				t.Errorf("OSC52 mismatch\ngot:  %q\nwant: %q", buf.String(), want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteReportsTerminalFailure(t *testing.T) {
	stub(t, func(string) error { return errors.New("no clipboard utility") })
	osc52Out = failingWriter{}

	if err := Write("log"); err == nil {
		t.Error("expected error when the terminal cannot be written")
	}
}
