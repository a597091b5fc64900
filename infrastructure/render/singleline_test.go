package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/infrastructure/render"
)

func newSingleLineState(content, prompt string, cols int) *model.State {
	buf := model.NewBuffer(256, true)
	buf.InsertAt(0, []byte(content))
	s := model.NewState(buf, prompt, len(prompt), cols, false, false)
	s.Pos = buf.Len()
	return s
}

func TestSingleLineRenderer_PlainShortLine(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("hi", "> ", 80)
	out := string(r.Render(s, "", 0, false, nil))

	assert.True(t, strings.HasPrefix(out, "\r> hi"))
	assert.Contains(t, out, "\x1b[0K")
}

func TestSingleLineRenderer_MaskModeHidesContent(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("secret", "pw: ", 80)
	s.Mask = true
	out := string(r.Render(s, "", 0, false, nil))

	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "******")
}

func TestSingleLineRenderer_HintShownOnlyAtEndOfBuffer(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("ab", "> ", 80)
	s.Pos = 1 // not at end
	out := string(r.Render(s, "hint text", 0, false, nil))
	assert.NotContains(t, out, "hint text")

	s.Pos = s.Buf.Len()
	out = string(r.Render(s, "hint text", 0, false, nil))
	assert.Contains(t, out, "hint text")
}

func TestSingleLineRenderer_NoHintInMaskMode(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("ab", "> ", 80)
	s.Mask = true
	out := string(r.Render(s, "hint text", 0, false, nil))
	assert.NotContains(t, out, "hint text")
}

func TestSingleLineRenderer_ScrollsWhenLineExceedsColumns(t *testing.T) {
	r := render.NewSingleLineRenderer()
	content := strings.Repeat("x", 70)
	s := newSingleLineState(content, "> ", 20)
	out := string(r.Render(s, "", 0, false, nil))

	// Cursor at end, so the window should show only the tail that fits.
	assert.LessOrEqual(t, len(out), 20+30) // generous bound on escape overhead
	assert.NotContains(t, out, strings.Repeat("x", 70))
}

func TestSingleLineRenderer_HighlightColorsBytes(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("ab", "> ", 80)
	colors := []byte{1, 2}
	out := string(r.Render(s, "", 0, false, colors))
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "\x1b[32m")
}

func TestSingleLineRenderer_Erase(t *testing.T) {
	r := render.NewSingleLineRenderer()
	s := newSingleLineState("hi", "> ", 80)
	out := string(r.Erase(s))
	assert.Equal(t, "\r\x1b[0K", out)
}
