package service

import "github.com/quillline/lineedit/domain/model"

// HistoryPrev and HistoryNext implement §4.3's history navigation: the
// in-progress edit is stashed into the history ring at its "most recent"
// slot before moving, so resuming the live edit later (by navigating back
// down to index 0) restores exactly what the user had typed.

// HistoryPrev moves one entry further into the past. It is a no-op at the
// oldest entry.
func (s *EditingService) HistoryPrev(state *model.State, hist *model.History) bool {
	return s.historyMove(state, hist, state.HistoryIndex+1)
}

// HistoryNext moves one entry toward the present. It is a no-op at index 0.
func (s *EditingService) HistoryNext(state *model.State, hist *model.History) bool {
	return s.historyMove(state, hist, state.HistoryIndex-1)
}

func (s *EditingService) historyMove(state *model.State, hist *model.History, newIndex int) bool {
	if newIndex < 0 || newIndex >= hist.Len() {
		return false
	}

	// Stash the current buffer at its "most recent" history slot so it
	// survives the round trip.
	hist.Set(hist.Len()-1-state.HistoryIndex, string(state.Buf.Bytes()))

	// SetContent grows a dynamic buffer to fit, or silently clips to
	// capacity in fixed mode (model.Buffer.SetContent) — no clipping here.
	line := hist.FromNewest(newIndex)
	state.Buf.SetContent([]byte(line))
	state.Pos = state.Buf.Len()
	state.HistoryIndex = newIndex
	return true
}
