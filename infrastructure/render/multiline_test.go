package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/infrastructure/render"
)

func newMultiLineState(content, prompt string, cols int) *model.State {
	buf := model.NewBuffer(256, true)
	buf.InsertAt(0, []byte(content))
	s := model.NewState(buf, prompt, len(prompt), cols, true, false)
	s.Pos = buf.Len()
	return s
}

func TestMultiLineRenderer_ShortLineSingleRow(t *testing.T) {
	r := render.NewMultiLineRenderer()
	s := newMultiLineState("hi", "> ", 80)
	out := string(r.Render(s, "", 0, false, nil))
	assert.Contains(t, out, "> hi")
	assert.Equal(t, 1, s.OldRows)
}

func TestMultiLineRenderer_WrapsAcrossMultipleRows(t *testing.T) {
	r := render.NewMultiLineRenderer()
	content := strings.Repeat("x", 70)
	s := newMultiLineState(content, "> ", 20)
	r.Render(s, "", 0, false, nil)
	assert.Greater(t, s.OldRows, 1)
}

func TestMultiLineRenderer_SecondRenderErasesPreviousRows(t *testing.T) {
	r := render.NewMultiLineRenderer()
	content := strings.Repeat("x", 70)
	s := newMultiLineState(content, "> ", 20)
	r.Render(s, "", 0, false, nil)
	require.Greater(t, s.OldRows, 1)

	out2 := string(r.Render(s, "", 0, false, nil))
	assert.Contains(t, out2, "\x1b[1A") // moves cursor up while erasing old rows
}

func TestMultiLineRenderer_MaskModeHidesContent(t *testing.T) {
	r := render.NewMultiLineRenderer()
	s := newMultiLineState("secret", "pw: ", 80)
	s.Mask = true
	out := string(r.Render(s, "", 0, false, nil))
	assert.NotContains(t, out, "secret")
}

func TestMultiLineRenderer_Erase_NoopWhenNothingRenderedYet(t *testing.T) {
	r := render.NewMultiLineRenderer()
	s := newMultiLineState("hi", "> ", 80)
	out := r.Erase(s)
	assert.Nil(t, out)
}

func TestMultiLineRenderer_Erase_ResetsGeometry(t *testing.T) {
	r := render.NewMultiLineRenderer()
	s := newMultiLineState("hi", "> ", 80)
	r.Render(s, "", 0, false, nil)
	require.Greater(t, s.OldRows, 0)

	r.Erase(s)
	assert.Equal(t, 0, s.OldRows)
	assert.Equal(t, 0, s.OldPos)
	assert.Equal(t, 0, s.OldRPos)
}
