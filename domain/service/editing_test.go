package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillline/lineedit/domain/model"
	"github.com/quillline/lineedit/domain/service"
)

func newEditState(content string, pos int) *model.State {
	buf := model.NewBuffer(64, true)
	buf.InsertAt(0, []byte(content))
	s := model.NewState(buf, "> ", 2, 80, false, false)
	s.Pos = pos
	return s
}

func TestEditingService_Insert_AtCursor(t *testing.T) {
	s := newEditState("helloworld", 5)
	e := service.NewEditingService()
	res := e.Insert(s, []byte(" "))
	require.True(t, res.Inserted)
	assert.Equal(t, "hello world", string(s.Buf.Bytes()))
	assert.Equal(t, 6, s.Pos)
}

func TestEditingService_Insert_FastAppendOnlyAtEndSingleLineUnmasked(t *testing.T) {
	s := newEditState("hi", 2)
	e := service.NewEditingService()
	res := e.Insert(s, []byte("!"))
	assert.True(t, res.FastAppend)
}

func TestEditingService_Insert_NoFastAppendMidBuffer(t *testing.T) {
	s := newEditState("hi", 0)
	e := service.NewEditingService()
	res := e.Insert(s, []byte("!"))
	assert.False(t, res.FastAppend)
}

func TestEditingService_Insert_NoFastAppendInMaskMode(t *testing.T) {
	s := newEditState("hi", 2)
	s.Mask = true
	e := service.NewEditingService()
	res := e.Insert(s, []byte("!"))
	assert.False(t, res.FastAppend)
}

func TestEditingService_Backspace_IsInverseOfInsert(t *testing.T) {
	s := newEditState("hello", 5)
	e := service.NewEditingService()
	e.Insert(s, []byte("!"))
	require.Equal(t, "hello!", string(s.Buf.Bytes()))
	ok := e.Backspace(s)
	require.True(t, ok)
	assert.Equal(t, "hello", string(s.Buf.Bytes()))
	assert.Equal(t, 5, s.Pos)
}

func TestEditingService_Backspace_AtStartIsNoop(t *testing.T) {
	s := newEditState("hi", 0)
	e := service.NewEditingService()
	ok := e.Backspace(s)
	assert.False(t, ok)
}

func TestEditingService_DeleteForward(t *testing.T) {
	s := newEditState("hello", 0)
	e := service.NewEditingService()
	ok := e.DeleteForward(s)
	require.True(t, ok)
	assert.Equal(t, "ello", string(s.Buf.Bytes()))
	assert.Equal(t, 0, s.Pos)
}

func TestEditingService_DeleteForward_AtEndIsNoop(t *testing.T) {
	s := newEditState("hi", 2)
	e := service.NewEditingService()
	assert.False(t, e.DeleteForward(s))
}

func TestEditingService_MoveLeftRight(t *testing.T) {
	s := newEditState("abc", 3)
	e := service.NewEditingService()
	require.True(t, e.MoveLeft(s))
	assert.Equal(t, 2, s.Pos)
	require.True(t, e.MoveRight(s))
	assert.Equal(t, 3, s.Pos)
}

func TestEditingService_MoveHomeEnd(t *testing.T) {
	s := newEditState("abc", 1)
	e := service.NewEditingService()
	require.True(t, e.MoveHome(s))
	assert.Equal(t, 0, s.Pos)
	require.True(t, e.MoveEnd(s))
	assert.Equal(t, 3, s.Pos)
}

func TestEditingService_DeleteLine(t *testing.T) {
	s := newEditState("abc", 2)
	e := service.NewEditingService()
	require.True(t, e.DeleteLine(s))
	assert.Equal(t, "", string(s.Buf.Bytes()))
	assert.Equal(t, 0, s.Pos)
}

func TestEditingService_DeleteToEnd(t *testing.T) {
	s := newEditState("hello world", 5)
	e := service.NewEditingService()
	require.True(t, e.DeleteToEnd(s))
	assert.Equal(t, "hello", string(s.Buf.Bytes()))
}

func TestEditingService_DeletePreviousWord(t *testing.T) {
	s := newEditState("hello world", 11)
	e := service.NewEditingService()
	require.True(t, e.DeletePreviousWord(s))
	assert.Equal(t, "hello ", string(s.Buf.Bytes()))
	assert.Equal(t, 6, s.Pos)
}

func TestEditingService_DeletePreviousWord_SkipsTrailingSpaces(t *testing.T) {
	s := newEditState("hello   ", 8)
	e := service.NewEditingService()
	require.True(t, e.DeletePreviousWord(s))
	assert.Equal(t, "", string(s.Buf.Bytes()))
}

func TestEditingService_Transpose_MidBuffer(t *testing.T) {
	s := newEditState("abc", 2) // cursor between b and c
	e := service.NewEditingService()
	require.True(t, e.Transpose(s))
	assert.Equal(t, "acb", string(s.Buf.Bytes()))
}

func TestEditingService_Transpose_AtEndOfBuffer(t *testing.T) {
	s := newEditState("ab", 2)
	e := service.NewEditingService()
	require.True(t, e.Transpose(s))
	assert.Equal(t, "ba", string(s.Buf.Bytes()))
	assert.Equal(t, s.Buf.Len(), s.Pos)
}

func TestEditingService_Transpose_TooShortIsNoop(t *testing.T) {
	s := newEditState("a", 1)
	e := service.NewEditingService()
	assert.False(t, e.Transpose(s))
}

func TestEditingService_ClearScreen_AlwaysReportsChange(t *testing.T) {
	s := newEditState("", 0)
	e := service.NewEditingService()
	assert.True(t, e.ClearScreen(s))
}
