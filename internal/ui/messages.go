package ui

import "github.com/justinpbarnett/ps3decui/internal/ui/panels"

// Aliases of the panels message types.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// RelayMsg delivers the next relay line of a session. Closed is set when the
// session's channel has been drained and closed.
type RelayMsg struct {
	SessionID string
	Line      string
	Closed    bool
}
