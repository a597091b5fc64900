package model

// State is the mutable editing context for one line (§3 "Edit State"). It
// holds everything an Editor Operation or the Renderer needs and nothing
// more: it has no notion of a terminal handle or a callback, those live on
// Context.
type State struct {
	Buf *Buffer

	// Pos is the cursor's byte offset into Buf; always a grapheme boundary.
	Pos int

	// Prompt is borrowed for the session's lifetime (§9 "Shared-vs-owned
	// strings"): its display width, PromptCols, is cached so the renderer
	// need not recompute it.
	Prompt     string
	PromptCols int

	// Cols is the terminal column count as of session start or the last
	// resize-triggered refresh.
	Cols int

	// Previous-render geometry, consumed by the incremental renderer to
	// erase exactly what it drew last time (§4.4).
	OldPos   int
	OldRows  int
	OldRPos  int

	// HistoryIndex is 0 for the line currently being edited, N for the
	// Nth-newest committed entry (§3).
	HistoryIndex int

	// Completion navigation (§4.5): valid only while InCompletion is true.
	InCompletion  bool
	CompletionIdx int
	Candidates    []string
	// PreCompletionBuf/PreCompletionPos save the real buffer contents so
	// Escape can restore the user's line after candidates were written
	// over it.
	PreCompletionBuf []byte
	PreCompletionPos int

	// MultiLine selects the multi-line renderer (§4.4); Mask selects
	// password-style '*' rendering (§4.4 "Mask mode").
	MultiLine bool
	Mask      bool
}

// NewState creates a fresh editing state for one Read/Start call.
func NewState(buf *Buffer, prompt string, promptCols, cols int, multiLine, mask bool) *State {
	return &State{
		Buf:        buf,
		Pos:        0,
		Prompt:     prompt,
		PromptCols: promptCols,
		Cols:       cols,
		MultiLine:  multiLine,
		Mask:       mask,
	}
}
