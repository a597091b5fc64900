package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillline/lineedit/domain/service"
)

func TestCompletionService_Begin_EntersCompletionMode(t *testing.T) {
	s := newEditState("he", 2)
	c := service.NewCompletionService()
	bell := c.Begin(s, func(line string) []string { return []string{"hello", "help"} })
	require.False(t, bell)
	assert.True(t, s.InCompletion)
	assert.Equal(t, "hello", string(s.Buf.Bytes()))
}

func TestCompletionService_Begin_NoCandidatesBells(t *testing.T) {
	s := newEditState("xy", 2)
	c := service.NewCompletionService()
	bell := c.Begin(s, func(line string) []string { return nil })
	assert.True(t, bell)
	assert.False(t, s.InCompletion)
}

func TestCompletionService_Begin_CyclesThroughCandidates(t *testing.T) {
	s := newEditState("he", 2)
	c := service.NewCompletionService()
	c.Begin(s, func(line string) []string { return []string{"hello", "help"} })
	c.Begin(s, nil) // cycle: complete func unused on subsequent calls
	assert.Equal(t, "help", string(s.Buf.Bytes()))
}

func TestCompletionService_Begin_WrapsAroundToOriginalAndBells(t *testing.T) {
	s := newEditState("he", 2)
	c := service.NewCompletionService()
	c.Begin(s, func(line string) []string { return []string{"hello"} })
	bell := c.Begin(s, nil) // wraps: only one candidate
	assert.True(t, bell)
	assert.True(t, s.InCompletion)
	assert.Equal(t, "he", string(s.Buf.Bytes()))
}

func TestCompletionService_Cancel_RestoresOriginalBuffer(t *testing.T) {
	s := newEditState("he", 2)
	c := service.NewCompletionService()
	c.Begin(s, func(line string) []string { return []string{"hello", "help"} })
	c.Cancel(s)
	assert.False(t, s.InCompletion)
	assert.Equal(t, "he", string(s.Buf.Bytes()))
	assert.Equal(t, 2, s.Pos)
}

func TestCompletionService_Accept_KeepsDisplayedCandidate(t *testing.T) {
	s := newEditState("he", 2)
	c := service.NewCompletionService()
	c.Begin(s, func(line string) []string { return []string{"hello", "help"} })
	c.Accept(s)
	assert.False(t, s.InCompletion)
	assert.Equal(t, "hello", string(s.Buf.Bytes()))
	assert.Equal(t, s.Buf.Len(), s.Pos)
}
