package keydecoder

import (
	"fmt"

	"github.com/quillline/lineedit/domain/value"
	"github.com/quillline/lineedit/errkind"
	"github.com/quillline/lineedit/infrastructure/terminal"
)

// decodeEscape implements §4.2 step 3: a lone ESC times out to a standalone
// Escape event; `ESC [ ...` and `ESC O ...` sequences are read to their
// final byte and mapped to arrows/Home/End/Delete; anything else is
// reported as KeyUnknown, which the editor ignores, since malformed escape
// sequences are noise, not input.
func (d *Decoder) decodeEscape() (value.Event, error) {
	b1, res, err := d.readByte(d.escapeTimeout)
	if err != nil {
		return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
	}
	if res != terminal.ReadOK {
		return value.Event{Type: value.KeyEscape}, nil
	}

	switch b1 {
	case '[':
		return d.decodeCSI()
	case 'O':
		b2, res, err := d.readByte(d.escapeTimeout)
		if err != nil {
			return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
		}
		if res != terminal.ReadOK {
			return discardEvent(), nil
		}
		switch b2 {
		case 'H':
			return value.Event{Type: value.KeyHome}, nil
		case 'F':
			return value.Event{Type: value.KeyEnd}, nil
		default:
			return discardEvent(), nil
		}
	default:
		return discardEvent(), nil
	}
}

// decodeCSI reads bytes following `ESC [` until a final byte (a letter, or
// a digit sequence terminated by '~'), then maps the recognized forms to
// arrow/Home/End/Delete events.
func (d *Decoder) decodeCSI() (value.Event, error) {
	var params []byte
	for {
		b, res, err := d.readByte(d.escapeTimeout)
		if err != nil {
			return value.Event{}, fmt.Errorf("%w: %v", errkind.Read, err)
		}
		if res != terminal.ReadOK {
			return discardEvent(), nil
		}
		switch {
		case b == 'A':
			return value.Event{Type: value.KeyArrowUp}, nil
		case b == 'B':
			return value.Event{Type: value.KeyArrowDown}, nil
		case b == 'C':
			return value.Event{Type: value.KeyArrowRight}, nil
		case b == 'D':
			return value.Event{Type: value.KeyArrowLeft}, nil
		case b == 'H':
			return value.Event{Type: value.KeyHome}, nil
		case b == 'F':
			return value.Event{Type: value.KeyEnd}, nil
		case b == '~':
			return csiTildeEvent(params), nil
		case b >= '0' && b <= '9' || b == ';':
			params = append(params, b)
		default:
			return discardEvent(), nil
		}
	}
}

// csiTildeEvent maps the numeric parameter of a `ESC [ <n> ~` sequence.
// Only the forms §4.2 names are recognized: 1/7 -> Home, 3 -> Delete,
// 4/8 -> End. Anything else is discarded.
func csiTildeEvent(params []byte) value.Event {
	switch string(params) {
	case "1", "7":
		return value.Event{Type: value.KeyHome}
	case "3":
		return value.Event{Type: value.KeyDelete}
	case "4", "8":
		return value.Event{Type: value.KeyEnd}
	default:
		return discardEvent()
	}
}

// discardEvent represents a malformed or unsupported escape sequence. It is
// reported as KeyUnknown; the editor operation dispatcher ignores it (§4.2:
// "Any other or malformed sequence is discarded silently").
func discardEvent() value.Event {
	return value.Event{Type: value.KeyUnknown}
}
