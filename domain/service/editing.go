package service

import (
	"github.com/quillline/lineedit/domain/model"
)

// EditingService implements the grapheme-aware buffer mutations of §4.3.
// Every method mutates the given State in place and reports whether a
// render is needed; callers (the api package) are responsible for
// invoking the renderer afterward, keeping this package free of any
// terminal dependency.
type EditingService struct {
	g GraphemeService
}

// NewEditingService constructs an EditingService.
func NewEditingService() *EditingService {
	return &EditingService{g: GraphemeService{}}
}

// InsertResult reports how Insert handled a request, so the caller can
// choose between a full render and the single-byte-append fast path
// (§4.3 "insert").
type InsertResult struct {
	Inserted bool
	// FastAppend is true when the insert landed at end-of-buffer and the
	// caller may write just the inserted bytes instead of a full redraw.
	FastAppend bool
}

// Insert splices raw bytes (one grapheme cluster, or a whole pasted run)
// at state.Pos. In fixed-capacity mode an insert that would overflow the
// buffer is dropped silently, matching §4.3.
func (s *EditingService) Insert(state *model.State, raw []byte) InsertResult {
	if len(raw) == 0 {
		return InsertResult{}
	}
	atEnd := state.Pos == state.Buf.Len()
	if !state.Buf.InsertAt(state.Pos, raw) {
		return InsertResult{}
	}
	state.Pos += len(raw)

	fast := atEnd && !state.MultiLine && !state.Mask
	if fast {
		newWidth := state.PromptCols + s.g.DisplayWidth(state.Buf.Bytes(), state.Buf.Len())
		fast = newWidth < state.Cols
	}
	return InsertResult{Inserted: true, FastAppend: fast}
}

// Backspace removes the grapheme cluster immediately before the cursor.
func (s *EditingService) Backspace(state *model.State) bool {
	clen := s.g.PrevGraphemeLen(state.Buf.Bytes(), state.Pos)
	if clen == 0 {
		return false
	}
	state.Buf.DeleteRange(state.Pos-clen, clen)
	state.Pos -= clen
	return true
}

// DeleteForward removes the grapheme cluster at the cursor.
func (s *EditingService) DeleteForward(state *model.State) bool {
	clen := s.g.NextGraphemeLen(state.Buf.Bytes(), state.Pos, state.Buf.Len())
	if clen == 0 {
		return false
	}
	state.Buf.DeleteRange(state.Pos, clen)
	return true
}

// MoveLeft moves the cursor back one grapheme cluster.
func (s *EditingService) MoveLeft(state *model.State) bool {
	clen := s.g.PrevGraphemeLen(state.Buf.Bytes(), state.Pos)
	if clen == 0 {
		return false
	}
	state.Pos -= clen
	return true
}

// MoveRight moves the cursor forward one grapheme cluster.
func (s *EditingService) MoveRight(state *model.State) bool {
	clen := s.g.NextGraphemeLen(state.Buf.Bytes(), state.Pos, state.Buf.Len())
	if clen == 0 {
		return false
	}
	state.Pos += clen
	return true
}

// MoveHome moves the cursor to the start of the buffer.
func (s *EditingService) MoveHome(state *model.State) bool {
	if state.Pos == 0 {
		return false
	}
	state.Pos = 0
	return true
}

// MoveEnd moves the cursor to the end of the buffer.
func (s *EditingService) MoveEnd(state *model.State) bool {
	if state.Pos == state.Buf.Len() {
		return false
	}
	state.Pos = state.Buf.Len()
	return true
}

// DeleteLine clears the entire buffer (§4.3 "delete-line").
func (s *EditingService) DeleteLine(state *model.State) bool {
	if state.Buf.Len() == 0 {
		return false
	}
	state.Buf.Truncate(0)
	state.Pos = 0
	return true
}

// DeleteToEnd removes everything from the cursor to the end of the
// buffer (§4.3 "delete-to-end", Ctrl-K).
func (s *EditingService) DeleteToEnd(state *model.State) bool {
	if state.Pos == state.Buf.Len() {
		return false
	}
	state.Buf.Truncate(state.Pos)
	return true
}

// DeletePreviousWord skips leftward over ASCII spaces, then over
// non-space graphemes, and removes the skipped range (§4.3, Ctrl-W).
func (s *EditingService) DeletePreviousWord(state *model.State) bool {
	start := state.Pos
	pos := state.Pos
	buf := state.Buf.Bytes()

	for pos > 0 && isASCIISpace(buf[pos-1]) {
		clen := s.g.PrevGraphemeLen(buf, pos)
		if clen == 0 {
			break
		}
		pos -= clen
	}
	for pos > 0 && !isASCIISpace(buf[pos-1]) {
		clen := s.g.PrevGraphemeLen(buf, pos)
		if clen == 0 {
			break
		}
		pos -= clen
	}
	if pos == start {
		return false
	}
	state.Buf.DeleteRange(pos, start-pos)
	state.Pos = pos
	return true
}

func isASCIISpace(b byte) bool { return b == ' ' }

// Transpose swaps the grapheme cluster before the cursor with the one at
// the cursor (or, if the cursor is at end-of-buffer, the two clusters
// preceding it), then advances the cursor past the swap (§4.3, §9: this
// implementation leaves the cursor at end-of-buffer in that corner case).
func (s *EditingService) Transpose(state *model.State) bool {
	buf := state.Buf.Bytes()
	pos := state.Pos
	atEnd := pos == len(buf)
	if atEnd {
		pos -= s.g.PrevGraphemeLen(buf, pos)
	}
	if pos <= 0 || pos >= len(buf) {
		return false
	}

	leftLen := s.g.PrevGraphemeLen(buf, pos)
	rightLen := s.g.NextGraphemeLen(buf, pos, len(buf))
	if leftLen == 0 || rightLen == 0 {
		return false
	}

	left := append([]byte(nil), buf[pos-leftLen:pos]...)
	right := append([]byte(nil), buf[pos:pos+rightLen]...)

	swapped := make([]byte, 0, leftLen+rightLen)
	swapped = append(swapped, right...)
	swapped = append(swapped, left...)

	state.Buf.DeleteRange(pos-leftLen, leftLen+rightLen)
	state.Buf.InsertAt(pos-leftLen, swapped)

	if atEnd {
		state.Pos = state.Buf.Len()
	} else {
		state.Pos = pos - leftLen + len(swapped)
	}
	return true
}

// ClearScreen has no buffer-side effect; it exists so the dispatcher can
// route Ctrl-L through the same "did this mutate, should we render" shape
// as every other operation. The actual screen clear is issued by the
// caller via the Terminal Port.
func (s *EditingService) ClearScreen(state *model.State) bool {
	return true
}
