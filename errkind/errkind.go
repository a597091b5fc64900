// Package errkind defines the editor's error taxonomy (§7): a small set of
// sentinel errors compared with errors.Is, not a hierarchy of types. It has
// no dependencies so both the infrastructure and api layers can return
// these without an import cycle.
package errkind

import "errors"

var (
	// EOF means the user ended input on an empty buffer (Ctrl-D).
	// Expected control flow, not a failure to log.
	EOF = errors.New("lineedit: eof")

	// Interrupted means the user pressed Ctrl-C. Expected control flow.
	Interrupted = errors.New("lineedit: interrupted")

	// NotATerminal means editing was requested on a non-terminal handle;
	// callers fall back to a line-oriented read (§4.7).
	NotATerminal = errors.New("lineedit: not a terminal")

	// Read wraps a Terminal Port read failure.
	Read = errors.New("lineedit: read error")

	// Write wraps a Terminal Port write failure. Render-time write
	// failures are swallowed per §7 and never reach the caller as this;
	// it surfaces only for the prompt's own initial write in Start.
	Write = errors.New("lineedit: write error")

	// Memory means an allocation failed (dynamic buffer growth, history
	// append). The edit state is left consistent.
	Memory = errors.New("lineedit: allocation failed")

	// Invalid means caller misuse: Start while a session is already
	// active, or Feed/Hide/Show with no active session.
	Invalid = errors.New("lineedit: invalid argument")
)
