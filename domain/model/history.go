package model

// History is the bounded FIFO ring of previously-submitted lines (§3
// "History store", §4.6). Oldest-first internally; Add appends at the
// tail. Grounded on the KillRing at components/input/textarea/domain/model:
// a fixed-capacity ring with a single "most recent" end, adapted here to
// string content and a dedup-on-add rule instead of a yank cursor.
type History struct {
	entries []string
	maxLen  int
}

// DefaultHistoryMaxLen matches §3's default capacity.
const DefaultHistoryMaxLen = 100

// NewHistory creates an empty history store with the given capacity (pass
// <=0 for DefaultHistoryMaxLen).
func NewHistory(maxLen int) *History {
	if maxLen <= 0 {
		maxLen = DefaultHistoryMaxLen
	}
	return &History{maxLen: maxLen}
}

// Add appends line, unless maxLen is 0 (history disabled) or line is
// byte-identical to the current tail (§4.6 dedup rule). When at capacity
// the oldest entry is dropped to make room.
func (h *History) Add(line string) {
	if h.maxLen == 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) >= h.maxLen {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
}

// AddTentative unconditionally appends line, bypassing the dedup-on-add
// rule (it is a no-op only when history is disabled via maxLen 0). The
// editing session calls this once at start to reserve a "most recent"
// slot the in-progress edit can be stashed into while navigating
// history-prev/next (§5); RemoveLast discards it on cancellation, and a
// normal Add replaces it with the real committed line on Enter.
func (h *History) AddTentative(line string) {
	if h.maxLen == 0 {
		return
	}
	if len(h.entries) >= h.maxLen {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
}

// RemoveLast drops the most recently added entry. Used to undo the
// tentative tail entry a session creates at start, on Ctrl-C/Ctrl-D
// cancellation (§5 "Cancellation").
func (h *History) RemoveLast() {
	if len(h.entries) == 0 {
		return
	}
	h.entries = h.entries[:len(h.entries)-1]
}

// Set replaces the entry at the given index (0 = oldest), used to stash
// the in-progress edit buffer into the history ring while navigating
// history-prev/next (§4.3: "the current in-progress edit lives as the
// last history slot during a session").
func (h *History) Set(index int, line string) {
	if index < 0 || index >= len(h.entries) {
		return
	}
	h.entries[index] = line
}

// FromNewest returns the Nth-newest entry (0 = most recent), or "" if out
// of range.
func (h *History) FromNewest(n int) string {
	idx := len(h.entries) - 1 - n
	if idx < 0 || idx >= len(h.entries) {
		return ""
	}
	return h.entries[idx]
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// MaxLen returns the current capacity.
func (h *History) MaxLen() int { return h.maxLen }

// SetMaxLen changes the capacity (§4.6 "set_max_len"); n must be >= 1.
// Shrinking drops the oldest entries to fit.
func (h *History) SetMaxLen(n int) {
	if n < 1 {
		n = 1
	}
	h.maxLen = n
	if len(h.entries) > n {
		h.entries = h.entries[len(h.entries)-n:]
	}
}

// Entries returns a defensive copy of all entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
