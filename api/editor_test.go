package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillline/lineedit/api"
	"github.com/quillline/lineedit/internal/testhelpers"
)

// newTestEditor builds an Editor bound to a MockPort, bypassing New's
// os.File-based default port via WithPort.
func newTestEditor(t *testing.T, cols int, opts ...api.Option) (*api.Editor, *testhelpers.MockPort) {
	t.Helper()
	port := testhelpers.NewMockPort(cols)
	allOpts := append([]api.Option{api.WithPort(port)}, opts...)
	return api.New(nil, nil, allOpts...), port
}

func TestEditor_Read_HelloWorld(t *testing.T) {
	e, port := newTestEditor(t, 60)
	port.Feed([]byte("hello\r"))

	line, err := e.Read("hello> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestEditor_Read_Backspace(t *testing.T) {
	e, port := newTestEditor(t, 60)
	// "abc", backspace, backspace -> "a", then enter.
	port.Feed([]byte("abc"))
	port.Feed([]byte{0x7F, 0x7F})
	port.Feed([]byte("\r"))

	line, err := e.Read("hello> ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)
}

func TestEditor_Read_CtrlCInterrupts(t *testing.T) {
	e, port := newTestEditor(t, 60)
	port.Feed([]byte("ab"))
	port.Feed([]byte{0x03}) // Ctrl-C

	_, err := e.Read("hello> ")
	assert.ErrorIs(t, err, api.ErrInterrupted)
}

func TestEditor_Read_CtrlDOnEmptyBufferIsEOF(t *testing.T) {
	e, port := newTestEditor(t, 60)
	port.Feed([]byte{0x04}) // Ctrl-D on an empty buffer

	_, err := e.Read("hello> ")
	assert.ErrorIs(t, err, api.ErrEOF)
}

func TestEditor_Read_CtrlDDeletesForwardWhenBufferNonEmpty(t *testing.T) {
	e, port := newTestEditor(t, 60)
	// "ab", Left, Ctrl-D (deletes the 'b'), Enter.
	port.Feed([]byte("ab"))
	port.Feed([]byte{0x1B, '[', 'D'}) // Left arrow
	port.Feed([]byte{0x04})
	port.Feed([]byte("\r"))

	line, err := e.Read("hello> ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)
}

func TestEditor_Read_HistoryRecall(t *testing.T) {
	e, port := newTestEditor(t, 60)
	port.Feed([]byte("first\r"))
	line, err := e.Read("hello> ")
	require.NoError(t, err)
	require.Equal(t, "first", line)

	port.Feed([]byte{0x1B, '[', 'A'}) // Up: recall "first"
	port.Feed([]byte("\r"))
	line, err = e.Read("hello> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)
}

func TestEditor_Read_NonTTYFallback(t *testing.T) {
	e, port := newTestEditor(t, 60)
	port.SetTTY(false)
	port.Feed([]byte("piped input\n"))

	line, err := e.Read("hello> ")
	require.NoError(t, err)
	assert.Equal(t, "piped input", line)
}

func TestEditor_Read_Completion(t *testing.T) {
	e, port := newTestEditor(t, 60, api.WithCompletion(func(line string) []string {
		return []string{"help", "history"}
	}))
	port.Feed([]byte{'\t'})       // first candidate: "help"
	port.Feed([]byte{'\t'})       // second candidate: "history"
	port.Feed([]byte("\r"))       // accept "history"

	line, err := e.Read("> ")
	require.NoError(t, err)
	assert.Equal(t, "history", line)
}

func TestEditor_Read_MaskModeHidesContent(t *testing.T) {
	e, port := newTestEditor(t, 60, api.WithMask(true))
	port.Feed([]byte("secret\r"))

	line, err := e.Read("password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", line)
	assert.NotContains(t, string(port.Output), "secret")
}
