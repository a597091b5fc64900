package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillline/lineedit/domain/service"
)

func TestGraphemeService_NextGraphemeLen_ASCII(t *testing.T) {
	g := service.NewGraphemeService()
	buf := []byte("hello")
	assert.Equal(t, 1, g.NextGraphemeLen(buf, 0, len(buf)))
}

func TestGraphemeService_NextGraphemeLen_CombiningMark(t *testing.T) {
	g := service.NewGraphemeService()
	// "e" + combining acute accent (U+0301) is one grapheme cluster.
	buf := []byte("éx")
	n := g.NextGraphemeLen(buf, 0, len(buf))
	assert.Equal(t, len("é"), n)
}

func TestGraphemeService_NextGraphemeLen_ZWJSequence(t *testing.T) {
	g := service.NewGraphemeService()
	// Rainbow flag: white flag + ZWJ + rainbow, one grapheme cluster.
	flag := "\U0001F3F3️‍\U0001F308"
	buf := []byte(flag + "x")
	n := g.NextGraphemeLen(buf, 0, len(buf))
	assert.Equal(t, len(flag), n)
}

func TestGraphemeService_PrevGraphemeLen_IsInverseOfNext(t *testing.T) {
	g := service.NewGraphemeService()
	flag := "\U0001F3F3️‍\U0001F308"
	buf := []byte("x" + flag)
	end := len(buf)
	n := g.PrevGraphemeLen(buf, end)
	assert.Equal(t, len(flag), n)
}

func TestGraphemeService_PrevGraphemeLen_AtStartIsZero(t *testing.T) {
	g := service.NewGraphemeService()
	assert.Equal(t, 0, g.PrevGraphemeLen([]byte("hi"), 0))
}

func TestGraphemeService_DisplayWidth_WideCodepoint(t *testing.T) {
	g := service.NewGraphemeService()
	buf := []byte("中") // CJK, wide
	assert.Equal(t, 2, g.DisplayWidth(buf, len(buf)))
}

func TestGraphemeService_DisplayWidth_ZeroWidthCombining(t *testing.T) {
	g := service.NewGraphemeService()
	buf := []byte("é") // base + combining mark: only base counts
	assert.Equal(t, 1, g.DisplayWidth(buf, len(buf)))
}

func TestGraphemeService_DisplayWidth_ZWJSequenceCountsOnce(t *testing.T) {
	g := service.NewGraphemeService()
	flag := []byte("\U0001F3F3️‍\U0001F308")
	assert.Equal(t, 2, g.DisplayWidth(flag, len(flag)))
}

func TestGraphemeService_DecodeAt_MalformedByteFallsBackToOneByte(t *testing.T) {
	g := service.NewGraphemeService()
	buf := []byte{0xFF, 'x'}
	cp, n := g.DecodeAt(buf, 0)
	assert.Equal(t, rune(0xFF), cp)
	assert.Equal(t, 1, n)
}

func TestGraphemeClusters_SplitsCafeAndFlag(t *testing.T) {
	clusters := service.GraphemeClusters("café\U0001F3F3️‍\U0001F308")
	require := []string{"c", "a", "f", "é", "\U0001F3F3️‍\U0001F308"}
	assert.Equal(t, require, clusters)
}

func TestGraphemeClusters_Empty(t *testing.T) {
	assert.Nil(t, service.GraphemeClusters(""))
}
