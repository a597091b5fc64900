package render

import (
	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/domain/service"
)

// MultiLineRenderer implements §4.4's multi-line algorithm: the buffer
// wraps onto as many terminal rows as it needs, and the renderer tracks
// which row the cursor last sat on so it can erase exactly that many rows
// before redrawing.
type MultiLineRenderer struct {
	g *service.GraphemeService
}

// NewMultiLineRenderer constructs a MultiLineRenderer.
func NewMultiLineRenderer() *MultiLineRenderer {
	return &MultiLineRenderer{g: service.NewGraphemeService()}
}

// Render draws the current State using the previous render's geometry
// (state.OldRows/OldRPos) to erase only what was actually drawn last
// time, then stores new geometry back onto state for the next call.
// colors carries the same meaning as in SingleLineRenderer.Render.
func (r *MultiLineRenderer) Render(state *model.State, hint string, hintColor int, hintBold bool, colors []byte) []byte {
	buf := state.Buf.Bytes()
	pwidth := state.PromptCols
	cols := state.Cols

	fullWidth := pwidth + r.g.DisplayWidth(buf, len(buf))
	rows := ceilDiv(fullWidth, cols)
	if rows == 0 {
		rows = 1
	}

	out := NewAppendBuffer()

	// Step 2: move to the last row of the previous render, then erase
	// upward row by row, finally erasing the top row.
	if state.OldRows > 0 {
		if down := state.OldRows - state.OldRPos; down > 0 {
			out.CursorDown(down)
		}
		for i := 0; i < state.OldRows-1; i++ {
			out.CR().EraseLineRight().CursorUp(1)
		}
	}
	out.CR().EraseLineRight()

	// Step 3: write prompt + buffer.
	out.Str(state.Prompt)
	switch {
	case state.Mask:
		out.Str(maskGlyphs(buf, r.g))
	case colors != nil:
		out.Raw(RenderColored(buf, colors))
	default:
		out.Raw(buf)
	}

	poswidth := r.g.DisplayWidth(buf[:state.Pos], state.Pos)

	if hint != "" {
		lencol := fullWidth
		remaining := cols - (lencol % cols)
		if lencol%cols == 0 {
			remaining = cols
		}
		out.Raw(RenderHint(hint, hintColor, hintBold, remaining))
	}

	// Step 4: if the cursor sits exactly at end-of-buffer on a column
	// boundary, reserve an extra empty row so the cursor doesn't appear
	// to sit underneath the last glyph.
	if state.Pos == len(buf) && (poswidth+pwidth)%cols == 0 {
		out.Str("\n\r")
		rows++
	}

	// Step 5: position the cursor at its actual row/column.
	rpos2 := ceilDiv(pwidth+poswidth+1, cols)
	if pwidth+poswidth == 0 {
		rpos2 = 1
	}
	if up := rows - rpos2; up > 0 {
		out.CursorUp(up)
	}
	col := (pwidth + poswidth) % cols
	out.CR().CursorRight(col)

	state.OldPos = state.Pos
	state.OldRows = rows
	state.OldRPos = rpos2

	return out.Bytes()
}

// Erase clears every row the previous Render drew, resetting the
// geometry state so the next Render draws as if starting fresh (§4.7
// "hide"). A no-op if nothing has been rendered yet.
func (r *MultiLineRenderer) Erase(state *model.State) []byte {
	if state.OldRows == 0 {
		return nil
	}
	out := NewAppendBuffer()
	if down := state.OldRows - state.OldRPos; down > 0 {
		out.CursorDown(down)
	}
	for i := 0; i < state.OldRows-1; i++ {
		out.CR().EraseLineRight().CursorUp(1)
	}
	out.CR().EraseLineRight()

	state.OldPos = 0
	state.OldRows = 0
	state.OldRPos = 0

	return out.Bytes()
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
