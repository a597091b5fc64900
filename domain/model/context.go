package model

// CompletionFunc is the application-supplied completion callback (§6):
// given the current buffer content, it returns zero or more candidate
// replacement lines. The core frees the slice after each completion cycle.
type CompletionFunc func(line string) []string

// HintFunc is the application-supplied hints callback (§6): given the
// current buffer content, it returns an optional advisory string plus a
// §6 color code (0-7) and a bold flag.
type HintFunc func(line string) (hint string, color int, bold bool)

// FreeHintFunc is invoked once per render after a hint has been drawn,
// mirroring the source's free-hints callback for languages that need
// explicit deallocation. It is optional; Go callers normally leave it nil.
type FreeHintFunc func(hint string)

// HighlightFunc is the optional syntax-highlighting callback (§6): given
// the buffer, it paints one §6 color code per byte position.
type HighlightFunc func(line string) []byte

// Context is the per-instance configuration and state that isolates one
// editor from another (§3 "Context", §4.7). Nothing about it is global;
// two Contexts can coexist as long as they are not driving the same
// terminal handle at once (§5).
type Context struct {
	History *History

	MultiLine bool
	Mask      bool

	Completion CompletionFunc
	Hints      HintFunc
	FreeHints  FreeHintFunc
	Highlight  HighlightFunc

	// LastErr records the error kind of the most recent failed Read/Feed
	// call, queryable by the application (§7 propagation policy).
	LastErr error
}

// NewContext creates a Context with a fresh, default-capacity history and
// single-line, unmasked editing.
func NewContext() *Context {
	return &Context{
		History: NewHistory(DefaultHistoryMaxLen),
	}
}

// Destroy releases everything the context owns. History entries are
// Go-garbage-collected once dropped; this exists to mirror the source's
// explicit destroy step and to give callers one place to null out
// callbacks that might otherwise keep large closures alive.
func (c *Context) Destroy() {
	c.History = nil
	c.Completion = nil
	c.Hints = nil
	c.FreeHints = nil
	c.Highlight = nil
}
