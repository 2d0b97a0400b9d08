package prgrs

import "github.com/prgrs/prgrs/cwriter"

const (
	// cells the line spends outside bar glyphs: brackets plus " (NNN%)"
	frameOverhead = 9
	// line length assumed when the terminal size cannot be determined
	fallbackLength = 30
)

// Length sets how many terminal columns the whole progress line occupies,
// percentage field and brackets included.
//
// Proportional is resolved against the live terminal width on every
// redraw and is usually the better choice. Absolute lengths larger than
// the terminal are not handled specially and will glitch; lengths too
// small for a single bar glyph are bumped to hold one.
type Length struct {
	cols         int
	frac         float64
	proportional bool
}

// Absolute returns a Length of exactly cols columns.
func Absolute(cols int) Length {
	return Length{cols: cols}
}

// Proportional returns a Length of the given fraction of the terminal
// width. Fractions are clamped to [0, 1]: 0 yields a single step bar, 1
// fills the entire width. When the output is not a terminal, the length
// falls back to 30 columns.
func Proportional(frac float64) Length {
	return Length{frac: frac, proportional: true}
}

// barWidth resolves the glyph cell count of the bar for this length.
func (l Length) barWidth(w *cwriter.Writer) uint {
	cols := l.cols
	if l.proportional {
		if tw, _, err := w.GetTermSize(); err == nil {
			cols = int(float64(tw) * min(max(l.frac, 0), 1))
		} else {
			cols = fallbackLength
		}
	}
	if cols <= frameOverhead+1 {
		return 1
	}
	return uint(cols - frameOverhead)
}
