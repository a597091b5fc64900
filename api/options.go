package api

import (
	"time"

	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/infrastructure/terminal"
)

// CompletionFunc is the application-supplied completion callback (§6).
type CompletionFunc = model.CompletionFunc

// HintFunc is the application-supplied hints callback (§6).
type HintFunc = model.HintFunc

// FreeHintFunc is invoked once per render after a hint has been drawn (§6).
type FreeHintFunc = model.FreeHintFunc

// HighlightFunc is the optional per-byte syntax-highlight callback (§6).
type HighlightFunc = model.HighlightFunc

// Option configures an Editor at construction time. Grounded on the
// teacher's functional-options pattern (tea/application/program/options.go).
type Option func(*Editor)

// WithMultiLine selects the multi-line renderer, wrapping onto additional
// rows instead of horizontally scrolling (§4.4).
func WithMultiLine(enabled bool) Option {
	return func(e *Editor) { e.ctx.MultiLine = enabled }
}

// WithMask enables password-style '*' rendering (§4.4 "Mask mode").
func WithMask(enabled bool) Option {
	return func(e *Editor) { e.ctx.Mask = enabled }
}

// WithCompletion sets the Tab-completion callback (§4.5).
func WithCompletion(fn CompletionFunc) Option {
	return func(e *Editor) { e.ctx.Completion = fn }
}

// WithHints sets the inline-hint callback (§4.4 "Hint rendering").
func WithHints(fn HintFunc) Option {
	return func(e *Editor) { e.ctx.Hints = fn }
}

// WithFreeHints sets the callback invoked once per render after a hint
// string has been drawn, mirroring the source's explicit-deallocation
// hook for callers who need it (§6). Most Go callers leave this unset.
func WithFreeHints(fn FreeHintFunc) Option {
	return func(e *Editor) { e.ctx.FreeHints = fn }
}

// WithHighlight sets the optional per-byte syntax-highlight callback (§6).
func WithHighlight(fn HighlightFunc) Option {
	return func(e *Editor) { e.ctx.Highlight = fn }
}

// WithHistoryMaxLen sets the history ring's capacity (§4.6 "set_max_len").
// The default is model.DefaultHistoryMaxLen.
func WithHistoryMaxLen(n int) Option {
	return func(e *Editor) { e.ctx.History.SetMaxLen(n) }
}

// WithEscapeTimeout overrides the escape/extender-coalescing timeout
// (§4.2, §9 open question: not tunable in the source, exposed here since
// idiomatic Go libraries make such constants configurable). The default
// is keydecoder.DefaultEscapeTimeout.
func WithEscapeTimeout(d time.Duration) Option {
	return func(e *Editor) { e.escapeTimeout = d }
}

// WithPort overrides the Terminal Port, e.g. to drive the editor against
// an internal/testhelpers.MockPort in tests instead of a real tty.
func WithPort(p terminal.Port) Option {
	return func(e *Editor) { e.port = p }
}

// WithFixedBuffer switches the edit buffer from the default dynamic
// (growing) mode to a fixed capacity of n bytes, one of which is reserved
// for the NUL sentinel (so n-1 usable bytes): inserts that would overflow
// it are silently dropped (§3 "Edit buffer", §4.3
// "insert"). Most callers want the default dynamic buffer; this exists
// for callers embedding the editor in a context with a hard line-length
// ceiling, matching the source's caller-owned-buffer mode.
func WithFixedBuffer(n int) Option {
	return func(e *Editor) {
		e.bufDynamic = false
		e.bufCapHint = n
	}
}

// WithDebugKeyCodes enables the key-codes diagnostic mode: Read prints
// each decoded key event instead of editing, until Ctrl-C.
func WithDebugKeyCodes(enabled bool) Option {
	return func(e *Editor) { e.debugKeyCodes = enabled }
}

func defaultBufCapHint() int { return 1024 }
