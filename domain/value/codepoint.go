// Package value holds pure, stateless Unicode classification used by the
// grapheme-aware editing core. Nothing here touches a buffer or a terminal;
// it only answers "what is this codepoint" questions.
package value

import "github.com/unilibs/uniwidth"

// Width is the terminal column count a codepoint occupies.
type Width int

// Display widths a codepoint can have. Wide codepoints (CJK, emoji, ...)
// occupy two terminal columns; zero-width codepoints (combining marks, ZWJ,
// variation selectors) occupy none.
const (
	WidthZero Width = 0
	WidthOne  Width = 1
	WidthWide Width = 2
)

// ZWJ is the zero-width joiner, U+200D. A base codepoint immediately
// following a ZWJ is pulled into the preceding grapheme cluster (§3, §4.1).
const ZWJ rune = 0x200D

// ByteLenOfLeader returns the expected length, in bytes, of the UTF-8
// sequence starting with leading byte b. Invalid leaders (continuation
// bytes, or bytes that can never start a valid sequence) fall back to 1,
// so malformed input is treated as a single Latin-1 byte rather than
// panicking or desynchronizing the decoder.
func ByteLenOfLeader(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// zeroWidthRanges enumerates the combining-mark and format-control ranges
// that §3 requires to report width 0 even though they are not, in the
// general Unicode sense, purely "combining".
var zeroWidthRanges = [][2]rune{
	{0x0300, 0x036F}, // combining diacritical marks
	{0x1AB0, 0x1AFF}, // combining diacritical marks extended
	{0x1DC0, 0x1DFF}, // combining diacritical marks supplement
	{0x20D0, 0x20FF}, // combining diacritical marks for symbols
	{0xFE20, 0xFE2F}, // combining half marks
	{0xFE0E, 0xFE0E}, // variation selector (text presentation)
	{0xFE0F, 0xFE0F}, // variation selector (emoji presentation)
	{0x1F3FB, 0x1F3FF}, // emoji skin-tone modifiers
}

// wideRanges enumerates the additional wide ranges named in §4.1 beyond
// what uniwidth's fast path already classifies as wide (CJK, Hangul,
// fullwidth forms): regional indicators and the large emoji blocks.
var wideRanges = [][2]rune{
	{0x1F1E6, 0x1F1FF}, // regional indicator symbols (flag pairs)
	{0x1F300, 0x1F9FF}, // misc symbols & pictographs, emoticons, transport, supplemental symbols
	{0x1FA00, 0x1FAFF}, // extended-A symbols and pictographs
}

func inRanges(r rune, ranges [][2]rune) bool {
	for _, rg := range ranges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// CodepointWidth classifies a single Unicode scalar value per §3/§4.1.
// NUL is explicitly zero-width (it is the buffer's sentinel terminator and
// must never advance the cursor column).
func CodepointWidth(cp rune) Width {
	if cp == 0 || cp == ZWJ {
		return WidthZero
	}
	if inRanges(cp, zeroWidthRanges) {
		return WidthZero
	}
	if inRanges(cp, wideRanges) {
		return WidthWide
	}
	// Fast path for everything else: ASCII, CJK, Hangul, fullwidth forms,
	// and the common case of ordinary narrow text. uniwidth is tiered
	// (O(1) for the overwhelming majority of codepoints) which is why the
	// teacher reaches for it ahead of a full UAX #11 table walk.
	switch uniwidth.RuneWidth(cp) {
	case 2:
		return WidthWide
	case 0:
		return WidthZero
	default:
		return WidthOne
	}
}

// IsGraphemeExtender reports whether cp extends the preceding base codepoint
// rather than starting a new grapheme cluster: combining marks, variation
// selectors, and skin-tone modifiers. ZWJ is handled separately by the
// caller (next_grapheme_len/prev_grapheme_len), since joining has a
// one-codepoint lookahead/lookbehind rather than being a plain extender.
func IsGraphemeExtender(cp rune) bool {
	if cp == ZWJ {
		return false
	}
	return inRanges(cp, zeroWidthRanges)
}

// IsZWJ reports whether cp is the zero-width joiner.
func IsZWJ(cp rune) bool {
	return cp == ZWJ
}
