package render

import (
	"fmt"

	"github.com/quillline/lineedit/domain/service"
)

// RenderHint truncates hint to fit within maxCols display columns,
// truncating greedily at the last fitting grapheme cluster (§9, the
// final open-question bullet), then wraps it in the SGR sequence implied
// by the §6 color map (0=default, 1-7=ANSI color, +8=bold), resetting
// attributes afterward so the hint never bleeds into the next render.
func RenderHint(hint string, color int, bold bool, maxCols int) []byte {
	if maxCols <= 0 {
		return nil
	}

	truncated := truncateToWidth(hint, maxCols)
	if truncated == "" {
		return nil
	}

	sgr := hintSGR(color, bold || color&8 != 0)
	if sgr == "" {
		return []byte(truncated)
	}
	return []byte(fmt.Sprintf("%s%s\x1b[0m", sgr, truncated))
}

// truncateToWidth keeps whole grapheme clusters from hint until adding
// the next one would exceed maxCols columns.
func truncateToWidth(hint string, maxCols int) string {
	width := 0
	var out []byte
	for _, cluster := range service.GraphemeClusters(hint) {
		g := service.GraphemeService{}
		cw := g.SingleClusterWidth([]byte(cluster))
		if width+cw > maxCols {
			break
		}
		width += cw
		out = append(out, cluster...)
	}
	return string(out)
}

// hintSGR maps a §6 color code to its SGR prefix. Only the low three bits
// of color pick the color (0 = default); boldness comes from the bold
// argument, not from the +8 bit of color.
func hintSGR(color int, bold bool) string {
	base := color & 7
	hasColor := base != 0
	if !hasColor && !bold {
		return ""
	}
	switch {
	case hasColor && bold:
		return fmt.Sprintf("\x1b[1;3%dm", base)
	case hasColor:
		return fmt.Sprintf("\x1b[3%dm", base)
	default:
		return "\x1b[1m"
	}
}
