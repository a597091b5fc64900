package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillline/lineedit/infrastructure/render"
)

func TestAppendBuffer_ChainsSequences(t *testing.T) {
	out := render.NewAppendBuffer().CR().Str("hi").EraseLineRight().Bytes()
	assert.Equal(t, "\rhi\x1b[0K", string(out))
}

func TestAppendBuffer_CursorMovement(t *testing.T) {
	out := render.NewAppendBuffer().CursorRight(3).CursorLeft(2).CursorUp(1).CursorDown(4).Bytes()
	assert.Equal(t, "\x1b[3C\x1b[2D\x1b[1A\x1b[4B", string(out))
}

func TestAppendBuffer_ZeroOrNegativeMovementIsNoop(t *testing.T) {
	out := render.NewAppendBuffer().CursorRight(0).CursorLeft(-1).Bytes()
	assert.Empty(t, out)
}

func TestAppendBuffer_Home(t *testing.T) {
	out := render.NewAppendBuffer().Home().Bytes()
	assert.Equal(t, "\x1b[H\x1b[2J", string(out))
}

func TestAppendBuffer_Raw(t *testing.T) {
	out := render.NewAppendBuffer().Raw([]byte("raw bytes")).Bytes()
	assert.Equal(t, "raw bytes", string(out))
}
