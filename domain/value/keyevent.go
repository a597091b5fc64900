package value

// KeyType is the closed set of logical key events the decoder can produce
// (§4.2). It deliberately does not distinguish *which* escape sequence
// produced an event (e.g. `ESC [ H`, `ESC [ 1 ~` and `ESC O H` all decode
// to KeyHome) beyond what the editing operations care about.
type KeyType int

// Key event kinds.
const (
	KeyRune KeyType = iota // a printable grapheme cluster, carried in Event.Bytes
	KeyEnter
	KeyBackspace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlH
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlP
	KeyCtrlT
	KeyCtrlU
	KeyCtrlW
	KeyTab
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyUnknown // malformed/unsupported sequence, discarded by the caller
)

// Event is one decoded logical key event. Bytes carries the raw UTF-8 of a
// KeyRune event (possibly a full grapheme cluster, when the decoder chose
// to coalesce a base codepoint with immediately-following combining marks);
// it is empty for every other KeyType.
type Event struct {
	Type  KeyType
	Bytes []byte
}

// String returns a short debug label, used by the key-codes debug mode.
func (t KeyType) String() string {
	switch t {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyCtrlA:
		return "ctrl-a"
	case KeyCtrlB:
		return "ctrl-b"
	case KeyCtrlC:
		return "ctrl-c"
	case KeyCtrlD:
		return "ctrl-d"
	case KeyCtrlE:
		return "ctrl-e"
	case KeyCtrlF:
		return "ctrl-f"
	case KeyCtrlH:
		return "ctrl-h"
	case KeyCtrlK:
		return "ctrl-k"
	case KeyCtrlL:
		return "ctrl-l"
	case KeyCtrlN:
		return "ctrl-n"
	case KeyCtrlP:
		return "ctrl-p"
	case KeyCtrlT:
		return "ctrl-t"
	case KeyCtrlU:
		return "ctrl-u"
	case KeyCtrlW:
		return "ctrl-w"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	default:
		return "unknown"
	}
}
