// Package keydecoder turns a byte stream from a Terminal Port into the
// closed set of logical key events defined by domain/value (§4.2).
package keydecoder

import (
	"fmt"
	"time"

	"github.com/quillline/lineedit/domain/service"
	"github.com/quillline/lineedit/domain/value"
	"github.com/quillline/lineedit/errkind"
	"github.com/quillline/lineedit/infrastructure/terminal"
)

var graphemes = service.NewGraphemeService()

// DefaultEscapeTimeout is the recommended bound from §4.2: long enough that
// a pasted escape sequence or a combining-mark burst reads as one event,
// short enough that a lone Escape keypress never makes the editor appear
// to hang.
const DefaultEscapeTimeout = 100 * time.Millisecond

// Decoder decodes one Port's byte stream into key events. It keeps a
// small pushback queue because the extender-coalescing lookahead in
// §4.2 step 2 may read a codepoint (up to four bytes) that turns out to
// belong to the *next* event; Next() must not drop it.
type Decoder struct {
	port          terminal.Port
	escapeTimeout time.Duration
	pending       []byte
}

// New creates a Decoder reading from port, with the given escape/extender
// timeout (pass <=0 for DefaultEscapeTimeout).
func New(port terminal.Port, escapeTimeout time.Duration) *Decoder {
	if escapeTimeout <= 0 {
		escapeTimeout = DefaultEscapeTimeout
	}
	return &Decoder{port: port, escapeTimeout: escapeTimeout}
}

// readByte reads one byte, preferring anything pushed back by a previous
// call. timeout has the same meaning as terminal.Port.ReadByte.
func (d *Decoder) readByte(timeout time.Duration) (byte, terminal.ReadResult, error) {
	if len(d.pending) > 0 {
		b := d.pending[0]
		d.pending = d.pending[1:]
		return b, terminal.ReadOK, nil
	}
	return d.port.ReadByte(timeout)
}

func (d *Decoder) pushBack(b byte) {
	d.pending = append(d.pending, b)
}

// Next blocks until one key event is decoded, or returns an error
// (wrapping errkind.Read) if the underlying read failed. It never returns
// both a zero Event and a nil error: ordering (§5) guarantees one event is
// fully consumed before the next begins.
func (d *Decoder) Next() (value.Event, error) {
	b, res, err := d.readByte(-1)
	if err != nil {
		return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
	}
	if res != terminal.ReadOK {
		// A blocking (negative-timeout) read that didn't error but also
		// didn't produce a byte should not happen; treat as EOF-like.
		return value.Event{}, fmt.Errorf("%w: blocking read returned no byte", errkind.Read)
	}

	switch {
	case b == 0x1B:
		return d.decodeEscape()
	case b < 0x20 || b == 0x7F:
		return controlEvent(b), nil
	case b >= 0x80:
		return d.decodeRune(b)
	default:
		return value.Event{Type: value.KeyRune, Bytes: []byte{b}}, nil
	}
}

// controlEvent maps one control byte to its key event (§4.2 step 1, and
// the keyboard contract in §6).
func controlEvent(b byte) value.Event {
	var t value.KeyType
	switch b {
	case 1:
		t = value.KeyCtrlA
	case 2:
		t = value.KeyCtrlB
	case 3:
		t = value.KeyCtrlC
	case 4:
		t = value.KeyCtrlD
	case 5:
		t = value.KeyCtrlE
	case 6:
		t = value.KeyCtrlF
	case 8:
		t = value.KeyCtrlH
	case 9:
		t = value.KeyTab
	case 11:
		t = value.KeyCtrlK
	case 12:
		t = value.KeyCtrlL
	case 13:
		t = value.KeyEnter
	case 14:
		t = value.KeyCtrlN
	case 16:
		t = value.KeyCtrlP
	case 20:
		t = value.KeyCtrlT
	case 21:
		t = value.KeyCtrlU
	case 23:
		t = value.KeyCtrlW
	case 0x7F:
		t = value.KeyBackspace
	default:
		t = value.KeyUnknown
	}
	return value.Event{Type: t}
}

// decodeRune assembles one UTF-8 codepoint starting with leading byte b,
// then opportunistically coalesces any immediately-following
// grapheme-extender codepoints (combining marks, variation selectors,
// skin-tone modifiers, ZWJ+base pairs) using the escape timeout so pasted
// text with combining diacritics arrives as one event while interactive
// typing of a lone base character never stalls (§4.2 step 2). Only
// multi-byte leaders come through here: Next emits a plain ASCII byte on
// its own, without the lookahead, so a combining mark typed or pasted
// after an ASCII base arrives as a separate event.
func (d *Decoder) decodeRune(b byte) (value.Event, error) {
	n := value.ByteLenOfLeader(b)
	seq := make([]byte, 1, n+4)
	seq[0] = b
	for i := 1; i < n; i++ {
		nb, res, err := d.readByte(-1)
		if err != nil {
			return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
		}
		if res != terminal.ReadOK {
			break
		}
		seq = append(seq, nb)
	}

	lastWasZWJ := false
	for {
		lead, res, err := d.readByte(d.escapeTimeout)
		if err != nil {
			return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
		}
		if res != terminal.ReadOK {
			break
		}
		extLen := value.ByteLenOfLeader(lead)
		extSeq := make([]byte, 1, extLen)
		extSeq[0] = lead
		for i := 1; i < extLen; i++ {
			nb, res, err := d.readByte(-1)
			if err != nil {
				return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
			}
			if res != terminal.ReadOK {
				break
			}
			extSeq = append(extSeq, nb)
		}
		cp := decodeCodepoint(extSeq)
		if !value.IsGraphemeExtender(cp) && !value.IsZWJ(cp) && !lastWasZWJ {
			// Not part of this cluster: push every byte back, in order, so
			// the next Next() call decodes it as its own event.
			for _, eb := range extSeq {
				d.pushBack(eb)
			}
			break
		}
		lastWasZWJ = value.IsZWJ(cp)
		seq = append(seq, extSeq...)
	}

	return value.Event{Type: value.KeyRune, Bytes: seq}, nil
}

func decodeCodepoint(seq []byte) rune {
	r, _ := graphemes.DecodeAt(seq, 0)
	return r
}
