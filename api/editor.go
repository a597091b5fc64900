// Package api is the public surface of the line-editor: an Editor bound to
// one Terminal Port, offering both a blocking Read and the non-blocking
// Start/Feed/Stop state machine of §4.7, built on the domain/infrastructure
// layers underneath. Grounded on the api package shape at tea/api/tea.go:
// a thin wrapper re-exporting domain types and gluing the internal layers
// together behind a stable import path.
package api

import (
	"fmt"
	"os"
	"time"

	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/domain/service"
	"github.com/quillline/lineedit/errkind"
	"github.com/quillline/lineedit/infrastructure/history"
	"github.com/quillline/lineedit/infrastructure/keydecoder"
	"github.com/quillline/lineedit/infrastructure/render"
	"github.com/quillline/lineedit/infrastructure/terminal"
)

// Error kinds (§7), re-exported so callers need not import errkind
// directly. Compare with errors.Is.
var (
	ErrEOF          = errkind.EOF
	ErrInterrupted  = errkind.Interrupted
	ErrNotATerminal = errkind.NotATerminal
	ErrRead         = errkind.Read
	ErrWrite        = errkind.Write
	ErrMemory       = errkind.Memory
	ErrInvalid      = errkind.Invalid
)

// Editor is a single editing context (§4.7 "Context"): it owns history and
// the application's callbacks, and drives one Terminal Port at a time.
// Using two Editors against the same terminal concurrently is undefined
// (§5 "Shared-resource policy").
type Editor struct {
	port          terminal.Port
	ctx           *model.Context
	escapeTimeout time.Duration

	editing    *service.EditingService
	completion *service.CompletionService
	graphemes  *service.GraphemeService
	singleR    *render.SingleLineRenderer
	multiR     *render.MultiLineRenderer
	decoder    *keydecoder.Decoder

	bufDynamic    bool
	bufCapHint    int
	debugKeyCodes bool

	// state is non-nil only between Start and Stop (§4.7 "Non-blocking
	// start/feed/stop").
	state *model.State
}

// New creates an Editor reading from in and writing to out (typically
// os.Stdin/os.Stdout). Defaults: dynamic buffer, single-line rendering,
// unmasked, history capacity model.DefaultHistoryMaxLen, escape timeout
// keydecoder.DefaultEscapeTimeout.
func New(in, out *os.File, opts ...Option) *Editor {
	e := &Editor{
		port:       terminal.NewUnixPort(in, out),
		ctx:        model.NewContext(),
		bufDynamic: true,
		bufCapHint: defaultBufCapHint(),
		editing:    service.NewEditingService(),
		completion: service.NewCompletionService(),
		graphemes:  service.NewGraphemeService(),
		singleR:    render.NewSingleLineRenderer(),
		multiR:     render.NewMultiLineRenderer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.decoder = keydecoder.New(e.port, e.escapeTimeout)
	return e
}

// History returns the context's history store, for direct inspection (the
// common case goes through SaveHistory/LoadHistory below).
func (e *Editor) History() *model.History { return e.ctx.History }

// SaveHistory persists the history store to path (§4.6 "save").
func (e *Editor) SaveHistory(path string) error {
	return history.Save(e.ctx.History, path)
}

// LoadHistory reads path and adds each line to the history store (§4.6
// "load"). A missing file is not an error.
func (e *Editor) LoadHistory(path string) error {
	return history.Load(e.ctx.History, path)
}

// SetMultiLine switches between the multi-line and single-line renderers
// (§4.7 "config setters"). It takes effect at the next Read or Start.
func (e *Editor) SetMultiLine(enabled bool) { e.ctx.MultiLine = enabled }

// LastErr returns the error kind of the most recently failed Read or Feed
// call, or nil (§7 propagation policy).
func (e *Editor) LastErr() error { return e.ctx.LastErr }

// Destroy releases everything the Editor owns (§4.7 "destroy"). The
// Editor must not be used afterward.
func (e *Editor) Destroy() {
	e.ctx.Destroy()
}

// Read performs one blocking edit session (§4.7): installs context state,
// enters raw mode, runs the editing loop to completion, and returns the
// committed line. On a non-terminal input handle it degrades to an
// unbounded line-oriented read with no editing (§4.7), returning ErrEOF
// on an empty final line with no trailing newline.
func (e *Editor) Read(prompt string) (string, error) {
	if e.debugKeyCodes {
		return "", e.DebugKeyCodes()
	}
	if !e.port.IsTTY() {
		return e.readLineNoTTY()
	}

	if err := e.Start(prompt); err != nil {
		return "", err
	}
	for {
		line, more, err := e.Feed()
		if err != nil {
			_ = e.Stop()
			return "", err
		}
		if !more {
			_ = e.Stop()
			return line, nil
		}
	}
}

// readLineNoTTY implements §4.7's non-terminal fallback: canonical,
// unedited, unbounded-length line input read one byte at a time through
// the Port (so it works the same whether the Port wraps a real pipe or a
// test double), stopping at '\n' or end of input.
func (e *Editor) readLineNoTTY() (string, error) {
	var line []byte
	for {
		b, res, err := e.port.ReadByte(-1)
		if err != nil {
			e.ctx.LastErr = errkind.Read
			return "", errkind.Read
		}
		if res != terminal.ReadOK {
			if len(line) == 0 {
				e.ctx.LastErr = errkind.EOF
				return "", errkind.EOF
			}
			return string(line), nil
		}
		if b == '\n' {
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			return string(line), nil
		}
		line = append(line, b)
	}
}

// Start initializes a non-blocking editing session: allocates the edit
// buffer, enters raw mode, and draws the initial prompt (§4.7
// "non-blocking start").
func (e *Editor) Start(prompt string) error {
	if e.state != nil {
		return errkind.Invalid
	}
	if err := e.port.EnterRaw(); err != nil {
		return err
	}

	cols := e.port.Columns()
	promptBytes := []byte(prompt)
	promptCols := e.graphemes.DisplayWidth(promptBytes, len(promptBytes))
	buf := model.NewBuffer(e.bufCapHint, e.bufDynamic)
	state := model.NewState(buf, prompt, promptCols, cols, e.ctx.MultiLine, e.ctx.Mask)

	e.ctx.History.AddTentative("")
	e.state = state

	if err := e.port.Write(e.renderFrame()); err != nil {
		return fmt.Errorf("%w: %v", errkind.Write, err)
	}
	return nil
}

// Feed processes exactly one input event (§4.7 "non-blocking feed"). more
// is true while editing continues (call Feed again); false means the
// session terminated, either with the committed line (err nil) or with a
// failure (ErrEOF/ErrInterrupted/ErrRead).
func (e *Editor) Feed() (line string, more bool, err error) {
	if e.state == nil {
		return "", false, errkind.Invalid
	}

	ev, err := e.decoder.Next()
	if err != nil {
		e.ctx.LastErr = err
		e.ctx.History.RemoveLast()
		return "", false, err
	}

	return e.dispatch(ev)
}

// Stop tears down a non-blocking session: restores the terminal and emits
// a trailing newline (§4.7 "non-blocking stop").
func (e *Editor) Stop() error {
	if e.state == nil {
		return nil
	}
	e.state = nil
	werr := e.port.Write([]byte("\r\n"))
	if err := e.port.LeaveRaw(); err != nil {
		return err
	}
	return werr
}

// Hide erases the currently rendered prompt/line without destroying the
// edit state, for applications that need to print asynchronous output
// mid-edit (§4.7 "hide").
func (e *Editor) Hide() error {
	if e.state == nil {
		return errkind.Invalid
	}
	return e.port.Write(e.eraseFrame())
}

// Show re-renders the prompt/line after Hide (§4.7 "show").
func (e *Editor) Show() error {
	if e.state == nil {
		return errkind.Invalid
	}
	return e.port.Write(e.renderFrame())
}
