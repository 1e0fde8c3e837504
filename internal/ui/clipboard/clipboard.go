package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Swapped in tests.
var (
	writeNative           = clipboard.WriteAll
	osc52Out    io.Writer = os.Stderr
)

// Write puts the run log on the clipboard. The platform clipboard tool is
// used when one is installed; otherwise the text is handed to the terminal.
func Write(text string) error {
	if writeNative(text) == nil {
		return nil
	}
	return writeOSC52(text)
}

// writeOSC52 asks the terminal emulator to set its clipboard with an OSC 52
// escape sequence. This works over SSH and inside tmux when the terminal
// allows it, and it is written to stderr because stdout belongs to the UI
// renderer. There is no acknowledgement, so only write errors are reported.
func writeOSC52(text string) error {
	payload := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(osc52Out, "\x1b]52;c;%s\x07", payload); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
