package render

import (
	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/domain/service"
)

// SingleLineRenderer implements §4.4's single-line algorithm: a
// horizontally-scrolled viewport over the buffer, redrawn with exactly
// `\r`, prompt, content, `ESC[0K`, `\r`, `ESC[nC`.
type SingleLineRenderer struct {
	g *service.GraphemeService
}

// NewSingleLineRenderer constructs a SingleLineRenderer.
func NewSingleLineRenderer() *SingleLineRenderer {
	return &SingleLineRenderer{g: service.NewGraphemeService()}
}

// Render draws the current State and returns the frame to write. hint
// (possibly empty) and its color/bold flags come from the application's
// hints callback (§6); the caller decides whether to fetch one at all.
// colors, if non-nil, is the optional highlight callback's per-byte color
// array (§6) aligned to the whole buffer; pass nil when no highlight
// callback is configured or mask mode hides the content anyway.
func (r *SingleLineRenderer) Render(state *model.State, hint string, hintColor int, hintBold bool, colors []byte) []byte {
	buf := state.Buf.Bytes()
	pos := state.Pos
	cols := state.Cols
	pwidth := state.PromptCols

	start, end := r.visibleWindow(buf, pos, pwidth, cols)

	poscol := r.g.DisplayWidth(buf[start:pos], pos-start)

	out := NewAppendBuffer()
	out.CR().Str(state.Prompt)

	switch {
	case state.Mask:
		out.Str(maskGlyphs(buf[start:end], r.g))
	case colors != nil:
		hi := colors
		if end < len(hi) {
			hi = hi[:end]
		}
		if start < len(hi) {
			hi = hi[start:]
		} else {
			hi = nil
		}
		out.Raw(RenderColored(buf[start:end], hi))
	default:
		out.Raw(buf[start:end])
	}

	if hint != "" && !state.Mask && end == len(buf) && pos == len(buf) {
		lencol := r.g.DisplayWidth(buf[start:end], end-start)
		remaining := cols - pwidth - lencol
		if remaining > 0 {
			out.Raw(RenderHint(hint, hintColor, hintBold, remaining))
		}
	}

	out.EraseLineRight()
	out.CR().CursorRight(pwidth + poscol)

	return out.Bytes()
}

// Erase clears the single visible line without touching State, so the
// caller can print asynchronous output before a later Render redraws the
// prompt and buffer (§4.7 "hide").
func (r *SingleLineRenderer) Erase(state *model.State) []byte {
	return NewAppendBuffer().CR().EraseLineRight().Bytes()
}

// visibleWindow computes the [start,end) byte range of buf that fits in
// cols columns with the prompt, per §4.4 steps 2-3: drop graphemes from
// the left until the cursor column fits, then drop graphemes from the
// right until the whole line fits (never past the cursor).
func (r *SingleLineRenderer) visibleWindow(buf []byte, pos, pwidth, cols int) (start, end int) {
	start = 0
	for start < pos {
		poscol := r.g.DisplayWidth(buf[start:pos], pos-start)
		if pwidth+poscol < cols {
			break
		}
		clen := r.g.NextGraphemeLen(buf, start, len(buf))
		if clen == 0 {
			break
		}
		start += clen
	}

	end = len(buf)
	for end > pos {
		lencol := r.g.DisplayWidth(buf[start:end], end-start)
		if pwidth+lencol <= cols {
			break
		}
		clen := r.g.PrevGraphemeLen(buf[:end], end)
		if clen == 0 {
			break
		}
		end -= clen
	}

	return start, end
}

// maskGlyphs renders one '*' per grapheme cluster in window, never
// leaking source bytes (§4.4 "Mask mode", §8 invariant).
func maskGlyphs(window []byte, g *service.GraphemeService) string {
	stars := make([]byte, 0, len(window))
	for offset := 0; offset < len(window); {
		clen := g.NextGraphemeLen(window, offset, len(window))
		if clen == 0 {
			break
		}
		stars = append(stars, '*')
		offset += clen
	}
	return string(stars)
}
