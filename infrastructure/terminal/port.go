// Package terminal implements the Terminal Port (§6): the small capability
// set the editing core needs from a real terminal, and nothing more. The
// core never touches termios, ioctls, or raw file descriptors directly —
// it only calls through this interface, which keeps the editing state
// machine testable against internal/testhelpers.MockPort.
package terminal

import "time"

// ReadResult is the outcome of one ReadByte call.
type ReadResult int

// ReadByte outcomes (§6).
const (
	ReadOK      ReadResult = iota // a byte was read
	ReadTimeout                   // the timeout elapsed with nothing to read
	ReadError                     // the underlying I/O failed
)

// Port is the capability set an application's terminal backend must supply.
// A Port is bound to one input handle and one output handle for its whole
// lifetime; the core never asks for a handle explicitly (§3 EditState notes
// ifd/ofd are "opaque to core" — here they are folded into the Port value
// itself rather than threaded as raw descriptors).
type Port interface {
	// EnterRaw disables canonical mode, line buffering, echo, and signal
	// generation, and enables byte-at-a-time input. Idempotent: calling it
	// twice in a row without an intervening LeaveRaw is a no-op. Returns
	// ErrNotATerminal if the input handle is not a terminal.
	EnterRaw() error

	// LeaveRaw restores the mode saved by the matching EnterRaw. Safe to
	// call even if EnterRaw was never called or already failed.
	LeaveRaw() error

	// ReadByte reads exactly one byte, honoring timeout: 0 means a
	// non-blocking poll, a negative duration means block forever, and a
	// positive duration bounds the wait (used for the escape-sequence
	// timeout discipline in §4.2).
	ReadByte(timeout time.Duration) (b byte, result ReadResult, err error)

	// Write writes the full buffer; a short write is reported as an error
	// rather than silently dropping bytes.
	Write(p []byte) error

	// IsTTY reports whether the input handle is a terminal.
	IsTTY() bool

	// Columns returns the current terminal column count, or 80 if it
	// cannot be determined.
	Columns() int

	// ClearScreen emits the platform's clear-screen + home-cursor sequence.
	ClearScreen() error
}
