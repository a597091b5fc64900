package api

import (
	"github.com/quillline/lineedit/domain/value"
	"github.com/quillline/lineedit/errkind"
)

// dispatch routes one decoded key event to the matching Editor Operation
// (§4.3, §4.5), writes a render frame when one is needed, and reports
// whether the session should continue.
func (e *Editor) dispatch(ev value.Event) (string, bool, error) {
	state := e.state

	if state.InCompletion {
		switch ev.Type {
		case value.KeyTab:
			if e.completion.Begin(state, e.ctx.Completion) {
				e.bell()
			}
			e.render()
			return "", true, nil
		case value.KeyEscape:
			e.completion.Cancel(state)
			e.render()
			return "", true, nil
		default:
			// Accept the displayed candidate, then fall through so this
			// key is delivered to normal processing (§4.5 step 4).
			e.completion.Accept(state)
		}
	}

	switch ev.Type {
	case value.KeyEnter:
		line := string(state.Buf.Bytes())
		e.ctx.History.RemoveLast()
		e.ctx.History.Add(line)
		return line, false, nil

	case value.KeyCtrlC:
		e.ctx.History.RemoveLast()
		e.ctx.LastErr = errkind.Interrupted
		return "", false, errkind.Interrupted

	case value.KeyCtrlD:
		if state.Buf.Len() == 0 {
			e.ctx.History.RemoveLast()
			e.ctx.LastErr = errkind.EOF
			return "", false, errkind.EOF
		}
		if e.editing.DeleteForward(state) {
			e.render()
		}

	case value.KeyBackspace, value.KeyCtrlH:
		if e.editing.Backspace(state) {
			e.render()
		}
	case value.KeyDelete:
		if e.editing.DeleteForward(state) {
			e.render()
		}
	case value.KeyCtrlA, value.KeyHome:
		if e.editing.MoveHome(state) {
			e.render()
		}
	case value.KeyCtrlE, value.KeyEnd:
		if e.editing.MoveEnd(state) {
			e.render()
		}
	case value.KeyCtrlB, value.KeyArrowLeft:
		if e.editing.MoveLeft(state) {
			e.render()
		}
	case value.KeyCtrlF, value.KeyArrowRight:
		if e.editing.MoveRight(state) {
			e.render()
		}
	case value.KeyCtrlK:
		if e.editing.DeleteToEnd(state) {
			e.render()
		}
	case value.KeyCtrlU:
		if e.editing.DeleteLine(state) {
			e.render()
		}
	case value.KeyCtrlW:
		if e.editing.DeletePreviousWord(state) {
			e.render()
		}
	case value.KeyCtrlT:
		if e.editing.Transpose(state) {
			e.render()
		}
	case value.KeyCtrlL:
		e.editing.ClearScreen(state)
		_ = e.port.ClearScreen()
		e.render()

	case value.KeyArrowUp, value.KeyCtrlP:
		if e.editing.HistoryPrev(state, e.ctx.History) {
			e.render()
		} else {
			e.bell()
		}
	case value.KeyArrowDown, value.KeyCtrlN:
		if e.editing.HistoryNext(state, e.ctx.History) {
			e.render()
		} else {
			e.bell()
		}

	case value.KeyTab:
		if e.ctx.Completion == nil {
			e.bell()
			break
		}
		if e.completion.Begin(state, e.ctx.Completion) {
			e.bell()
		}
		e.render()

	case value.KeyRune:
		res := e.editing.Insert(state, ev.Bytes)
		if res.Inserted {
			if res.FastAppend && e.ctx.Hints == nil && e.ctx.Highlight == nil {
				_ = e.port.Write(ev.Bytes)
			} else {
				e.render()
			}
		}

	case value.KeyEscape, value.KeyUnknown:
		// Malformed/unsupported sequences and a lone Escape outside
		// completion mode are ignored (§4.2).
	}

	return "", true, nil
}

// render assembles and writes one frame (§4.4 "Append Buffer"); write
// failures are swallowed per §7 ("Render-time write failures are
// silently swallowed").
func (e *Editor) render() {
	_ = e.port.Write(e.renderFrame())
}

// bell writes a single BEL byte, used for "back to original" and
// no-more-history signals (§4.3, §4.5).
func (e *Editor) bell() {
	_ = e.port.Write([]byte{0x07})
}

// renderFrame recomputes the column count (the Non-goals scope word-wrap
// reflow mid-edit to "a recomputation at next refresh", so this is the
// one place resize is observed), fetches a hint/highlight from the
// application's callbacks when applicable, and delegates to the
// configured renderer.
func (e *Editor) renderFrame() []byte {
	state := e.state
	state.Cols = e.port.Columns()

	var hint string
	var color int
	var bold bool
	if e.ctx.Hints != nil && !state.Mask && state.Pos == state.Buf.Len() {
		hint, color, bold = e.ctx.Hints(string(state.Buf.Bytes()))
		if hint != "" && e.ctx.FreeHints != nil {
			defer e.ctx.FreeHints(hint)
		}
	}

	var colors []byte
	if e.ctx.Highlight != nil && !state.Mask {
		colors = e.ctx.Highlight(string(state.Buf.Bytes()))
	}

	if state.MultiLine {
		return e.multiR.Render(state, hint, color, bold, colors)
	}
	return e.singleR.Render(state, hint, color, bold, colors)
}

// eraseFrame clears what the last render drew, for Hide.
func (e *Editor) eraseFrame() []byte {
	state := e.state
	if state.MultiLine {
		return e.multiR.Erase(state)
	}
	return e.singleR.Erase(state)
}
