//go:build !windows

package terminal

import (
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/quillline/lineedit/errkind"
)

// unixPort implements Port using golang.org/x/term for raw-mode
// entry/exit and terminal-size queries, and the file's own read deadline
// for the escape-sequence timeout (the same mechanism the Go runtime
// poller already uses for pipes and ttys, so no extra syscalls are needed
// beyond what os.File offers). Grounded on the ANSI terminal backend at
// terminal/infrastructure/unix/ansi.go, trimmed to exactly the capability
// set §6 names.
type unixPort struct {
	in, out *os.File
	saved   *term.State
}

// NewUnixPort binds a Port to the given input/output files (typically
// os.Stdin/os.Stdout).
func NewUnixPort(in, out *os.File) Port {
	return &unixPort{in: in, out: out}
}

func (p *unixPort) EnterRaw() error {
	if p.saved != nil {
		return nil // idempotent
	}
	if !isatty.IsTerminal(p.in.Fd()) {
		return errkind.NotATerminal
	}
	state, err := term.MakeRaw(int(p.in.Fd()))
	if err != nil {
		return err
	}
	p.saved = state
	registerExitHook(p)
	return nil
}

func (p *unixPort) LeaveRaw() error {
	if p.saved == nil {
		return nil
	}
	err := term.Restore(int(p.in.Fd()), p.saved)
	p.saved = nil
	unregisterExitHook(p)
	return err
}

func (p *unixPort) ReadByte(timeout time.Duration) (byte, ReadResult, error) {
	switch {
	case timeout > 0:
		_ = p.in.SetReadDeadline(time.Now().Add(timeout))
		defer p.in.SetReadDeadline(time.Time{})
	case timeout == 0:
		_ = p.in.SetReadDeadline(time.Now())
		defer p.in.SetReadDeadline(time.Time{})
	default:
		// negative: block forever, no deadline set.
	}

	var buf [1]byte
	n, err := p.in.Read(buf[:])
	if n == 1 {
		return buf[0], ReadOK, nil
	}
	if err != nil && errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, ReadTimeout, nil
	}
	if err != nil {
		return 0, ReadError, err
	}
	return 0, ReadTimeout, nil
}

func (p *unixPort) Write(data []byte) error {
	for len(data) > 0 {
		n, err := p.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (p *unixPort) IsTTY() bool {
	return isatty.IsTerminal(p.in.Fd())
}

func (p *unixPort) Columns() int {
	w, _, err := term.GetSize(int(p.out.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func (p *unixPort) ClearScreen() error {
	return p.Write([]byte("\x1b[H\x1b[2J"))
}
