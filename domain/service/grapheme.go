// Package service holds stateless operations over raw UTF-8 byte buffers:
// grapheme-cluster walking, display-width computation, and (in editing.go)
// the buffer mutation primitives built on top of them.
package service

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/quillline/lineedit/domain/value"
)

// GraphemeService implements the byte-offset grapheme walker described in
// §4.1. It is hand-rolled rather than delegated to uniseg's general UAX #29
// segmentation because the boundary rule here is narrower (one-codepoint
// ZWJ lookahead, no regional-indicator pairing, no extended pictographic
// state machine) and must produce exactly the invariants §8 tests against a
// raw byte buffer with an in-place cursor, not a Go string.
type GraphemeService struct{}

// NewGraphemeService constructs a GraphemeService. It carries no state; the
// constructor exists to match the package's other domain-service
// constructors and to give callers an obvious seam for a future
// configurable variant (e.g. East Asian Wide locale handling).
func NewGraphemeService() *GraphemeService { return &GraphemeService{} }

// DecodeAt decodes one codepoint starting at buf[offset], returning the
// codepoint and the number of bytes it consumed. A malformed leading byte
// decodes as-is with length 1 (§4.1 edge policy: treat as Latin-1
// fallback, never panic).
func (GraphemeService) DecodeAt(buf []byte, offset int) (rune, int) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0
	}
	n := value.ByteLenOfLeader(buf[offset])
	if offset+n > len(buf) {
		n = len(buf) - offset
	}
	r, size := utf8.DecodeRune(buf[offset : offset+n])
	if r == utf8.RuneError && size <= 1 {
		return rune(buf[offset]), 1
	}
	return r, size
}

// NextGraphemeLen returns the byte length of the grapheme cluster starting
// at offset, scanning no further than end. It consumes the leading
// codepoint, then repeatedly consumes grapheme-extenders; if the most
// recently consumed codepoint was a ZWJ, one more base codepoint is pulled
// in and the extender loop continues (§4.1).
func (g GraphemeService) NextGraphemeLen(buf []byte, offset, end int) int {
	if offset >= end {
		return 0
	}
	_, n := g.DecodeAt(buf[:end], offset)
	if n == 0 {
		return 0
	}
	pos := offset + n
	lastWasZWJ := false
	for {
		cp, cn := g.DecodeAt(buf[:end], pos)
		if cn == 0 {
			break
		}
		switch {
		case value.IsGraphemeExtender(cp):
			pos += cn
			lastWasZWJ = false
		case value.IsZWJ(cp):
			pos += cn
			lastWasZWJ = true
		case lastWasZWJ:
			// A ZWJ always joins exactly one following base codepoint.
			pos += cn
			lastWasZWJ = false
		default:
			return pos - offset
		}
	}
	return pos - offset
}

// PrevGraphemeLen returns the byte length of the grapheme cluster ending
// immediately before offset: it backs up over UTF-8 continuation bytes to
// find the prior leading byte, then keeps backing up while the newly
// exposed codepoint is a grapheme extender, is itself a ZWJ already pulled
// in while joining two bases, or is a base immediately preceded by a ZWJ
// that joins it to whatever comes before (§4.1, symmetric to
// NextGraphemeLen).
func (g GraphemeService) PrevGraphemeLen(buf []byte, offset int) int {
	if offset <= 0 {
		return 0
	}
	start := prevLeaderStart(buf, offset)
	for start > 0 {
		baseCP, _ := g.DecodeAt(buf, start)

		if value.IsGraphemeExtender(baseCP) || value.IsZWJ(baseCP) {
			// An extender attached to the preceding base, or a ZWJ already
			// absorbed while joining two bases: either way, keep backing
			// up over whatever precedes it.
			start = prevLeaderStart(buf, start)
			continue
		}

		candidateStart := prevLeaderStart(buf, start)
		candidateCP, candidateLen := g.DecodeAt(buf, candidateStart)
		if value.IsZWJ(candidateCP) && candidateLen > 0 {
			// The base at `start` is joined to whatever precedes the ZWJ;
			// pull in the ZWJ and keep scanning from it, so the next
			// iteration's IsZWJ(baseCP) case backs up past the preceding
			// base in turn.
			start = candidateStart
			continue
		}
		break
	}
	return offset - start
}

// prevLeaderStart backs up from offset over continuation bytes (10xxxxxx)
// to find the start of the previous codepoint.
func prevLeaderStart(buf []byte, offset int) int {
	i := offset - 1
	for i > 0 && buf[i]&0xC0 == 0x80 {
		i--
	}
	if i < 0 {
		i = 0
	}
	return i
}

// DisplayWidth sums codepoint widths across the grapheme-cluster bases in
// buf[:byteLen]: extenders contribute 0, and a ZWJ-joined sequence
// contributes only the width of its first base (§4.1).
func (g GraphemeService) DisplayWidth(buf []byte, byteLen int) int {
	if byteLen <= 0 {
		return 0
	}
	width := 0
	offset := 0
	for offset < byteLen {
		n := g.NextGraphemeLen(buf, offset, byteLen)
		if n <= 0 {
			break
		}
		width += g.SingleClusterWidth(buf[offset : offset+n])
		offset += n
	}
	return width
}

// SingleClusterWidth returns the display width of the grapheme cluster
// occupying cluster[0:], which must itself be exactly one cluster (as
// produced by NextGraphemeLen). Only the first (base) codepoint's width
// counts; everything after it is an extender or ZWJ-joined base.
func (GraphemeService) SingleClusterWidth(cluster []byte) int {
	if len(cluster) == 0 {
		return 0
	}
	g := GraphemeService{}
	cp, _ := g.DecodeAt(cluster, 0)
	return int(value.CodepointWidth(cp))
}

// GraphemeClusters splits s into grapheme clusters using uniseg's general
// UAX #29 segmentation. Used by the renderer for hint truncation, where a
// fully general segmentation is the better (and simpler) fit than the
// bespoke byte-walking algorithm above; mask-mode glyph counts use
// NextGraphemeLen instead.
func GraphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
