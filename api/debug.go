package api

import (
	"fmt"
	"os"

	"github.com/quillline/lineedit/domain/value"
	"github.com/quillline/lineedit/infrastructure/keydecoder"
)

// DebugKeyCodes runs the key-codes diagnostic mode (grounded on
// linenoise's linenoisePrintKeyCodes): it puts the terminal in raw mode,
// decodes and prints every key event as it arrives, and exits when the
// user types "quit" or presses Ctrl-C. It bypasses the editing loop
// entirely — no buffer, no render, no history.
//
// linenoise tracks the last four typed bytes with an overlapping
// memmove(quit, quit+1, 3) shift; §9 gives this an explicit,
// non-overlapping treatment instead, which is what the ring buffer below
// does.
func (e *Editor) DebugKeyCodes() error {
	if err := e.port.EnterRaw(); err != nil {
		return err
	}
	defer e.port.LeaveRaw()

	fmt.Fprintln(os.Stderr, "Key codes debug mode (type 'quit' or Ctrl-C to exit)")

	dec := keydecoder.New(e.port, e.escapeTimeout)
	var last4 [4]byte

	for {
		ev, err := dec.Next()
		if err != nil {
			return err
		}
		if ev.Type == value.KeyCtrlC {
			return nil
		}

		printKeyEvent(ev)

		if ev.Type == value.KeyRune && len(ev.Bytes) == 1 {
			shiftIn(&last4, ev.Bytes[0])
			if last4 == [4]byte{'q', 'u', 'i', 't'} {
				return nil
			}
		} else {
			last4 = [4]byte{}
		}
	}
}

// shiftIn drops last4[0], shifts the remaining three bytes left, and
// appends b at the end — an explicit, non-overlapping equivalent of the
// source's in-place memmove shift.
func shiftIn(last4 *[4]byte, b byte) {
	last4[0] = last4[1]
	last4[1] = last4[2]
	last4[2] = last4[3]
	last4[3] = b
}

func printKeyEvent(ev value.Event) {
	if ev.Type == value.KeyRune {
		fmt.Fprintf(os.Stderr, "%-12s %q (% x)\r\n", ev.Type, string(ev.Bytes), ev.Bytes)
		return
	}
	fmt.Fprintf(os.Stderr, "%-12s\r\n", ev.Type)
}
