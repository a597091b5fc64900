package service

import "github.com/quillline/lineedit/domain/model"

// CompletionFunc is the application-supplied completion callback (§6):
// given the current buffer content, it returns zero or more candidate
// replacement lines. Alias of model.CompletionFunc, since Context (which
// owns the callback) lives in the model package.
type CompletionFunc = model.CompletionFunc

// CompletionService implements the Tab-navigated completion cycle of
// §4.5. It shows each candidate by writing it into the buffer, keeping a
// copy of the original line so Escape, or wrapping past the last
// candidate, can restore it.
type CompletionService struct{}

// NewCompletionService constructs a CompletionService.
func NewCompletionService() *CompletionService { return &CompletionService{} }

// Begin starts or advances a completion cycle on Tab. The first call
// invokes complete to fetch candidates and enters completion mode; later
// calls cycle completion_idx modulo len+1, wrapping back to "bell, show
// the original line" at index == len (§4.5 steps 1-3).
//
// bell reports whether the caller should ring the terminal bell (empty
// candidate list, or wraparound to the original).
func (c *CompletionService) Begin(state *model.State, complete CompletionFunc) (bell bool) {
	if !state.InCompletion {
		candidates := complete(string(state.Buf.Bytes()))
		if len(candidates) == 0 {
			return true
		}
		state.PreCompletionBuf = append([]byte(nil), state.Buf.Bytes()...)
		state.PreCompletionPos = state.Pos
		state.InCompletion = true
		state.Candidates = candidates
		state.CompletionIdx = 0
		c.showCandidate(state)
		return false
	}

	state.CompletionIdx = (state.CompletionIdx + 1) % (len(state.Candidates) + 1)
	if state.CompletionIdx == len(state.Candidates) {
		c.restorePreCompletion(state)
		return true
	}
	c.showCandidate(state)
	return false
}

// Cancel reverts to the pre-completion buffer and exits completion mode
// (§4.5 step 4, Escape).
func (c *CompletionService) Cancel(state *model.State) {
	c.restorePreCompletion(state)
	c.end(state)
}

// Accept commits the currently displayed candidate into the real buffer
// and exits completion mode, so the key that triggered acceptance can
// then be delivered to normal processing (§4.5 step 4).
func (c *CompletionService) Accept(state *model.State) {
	c.end(state)
}

func (c *CompletionService) showCandidate(state *model.State) {
	cand := state.Candidates[state.CompletionIdx]
	state.Buf.SetContent([]byte(cand))
	state.Pos = state.Buf.Len()
}

func (c *CompletionService) restorePreCompletion(state *model.State) {
	state.Buf.SetContent(state.PreCompletionBuf)
	state.Pos = state.PreCompletionPos
}

func (c *CompletionService) end(state *model.State) {
	state.InCompletion = false
	state.Candidates = nil
	state.CompletionIdx = 0
	state.PreCompletionBuf = nil
	state.PreCompletionPos = 0
}
