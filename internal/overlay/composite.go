package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite draws fg over bg at the requested position plus offsets and
// returns the combined view. Both arguments are multi-line strings; styling
// escape sequences are preserved and never counted as width.
func Composite(fg, bg string, xPos, yPos Position, xOff, yOff int) string {
	fgLines := lines(fg)
	bgLines := lines(bg)
	x, y := offsets(fg, bg, xPos, yPos, xOff, yOff)

	out := make([]string, len(bgLines))
	copy(out, bgLines)
	for i, fl := range fgLines {
		r := y + i
		if r < 0 || r >= len(out) {
			continue
		}
		out[r] = overwrite(out[r], fl, x)
	}
	return strings.Join(out, "\n")
}

// At composites fg over bg anchored at an absolute cell coordinate. Used
// for popovers anchored to the on-screen bounds of the element that opened
// them.
func At(fg, bg string, x, y int) string {
	return Composite(fg, bg, Left, Top, x, y)
}

// offsets computes the top-left coordinate of fg within bg.
func offsets(fg, bg string, xPos, yPos Position, xOff, yOff int) (int, int) {
	fgLines, bgLines := lines(fg), lines(bg)
	fgW, bgW := maxWidth(fgLines), maxWidth(bgLines)
	fgH, bgH := len(fgLines), len(bgLines)

	var x, y int
	switch xPos {
	case Left:
		x = 0
	case Right:
		x = bgW - fgW
	default:
		x = bgW/2 - fgW/2
	}
	switch yPos {
	case Top:
		y = 0
	case Bottom:
		y = bgH - fgH
	default:
		y = bgH/2 - fgH/2
	}
	x = clamp(x+xOff, 0, bgW-fgW)
	y = clamp(y+yOff, 0, bgH-fgH)
	return x, y
}

// overwrite replaces the visible columns [x, x+w) of base with over,
// where w is the visible width of over.
func overwrite(base, over string, x int) string {
	w := ansi.StringWidth(over)
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + over + right
}

// lines splits s into display lines, tolerating CRLF endings. The empty
// string is one empty line.
func lines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func maxWidth(ls []string) int {
	w := 0
	for _, l := range ls {
		if lw := ansi.StringWidth(l); lw > w {
			w = lw
		}
	}
	return w
}

// clamp bounds val to [min, max]. A degenerate range (min > max) leaves
// val untouched; this happens when the foreground is larger than the
// background and no placement can contain it.
func clamp(val, min, max int) int {
	if min > max {
		return val
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
