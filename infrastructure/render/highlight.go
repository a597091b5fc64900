package render

// RenderColored paints window using one §6 color code per byte (colors must
// be the same length as window, or shorter — bytes past its end render
// uncolored). Consecutive bytes sharing a code are wrapped in a single SGR
// run rather than one escape per byte. This is the literal per-byte grain
// the optional highlight callback contract specifies (§6): a multi-byte
// UTF-8 sequence whose bytes carry different codes will have an escape
// sequence spliced between them, matching the source callback contract
// rather than rounding up to whole characters.
func RenderColored(window, colors []byte) []byte {
	out := make([]byte, 0, len(window)+8)
	cur := -1
	for i, b := range window {
		code := 0
		if i < len(colors) {
			code = int(colors[i])
		}
		if code != cur {
			if cur > 0 {
				out = append(out, "\x1b[0m"...)
			}
			if sgr := hintSGR(code&7, code&8 != 0); sgr != "" {
				out = append(out, sgr...)
			}
			cur = code
		}
		out = append(out, b)
	}
	if cur > 0 {
		out = append(out, "\x1b[0m"...)
	}
	return out
}
