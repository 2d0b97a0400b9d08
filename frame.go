package prgrs

import (
	"bytes"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/prgrs/prgrs/decor"
	"github.com/prgrs/prgrs/internal"
)

const (
	iLbound = iota
	iRbound
	iFiller
	iPadding
	components
)

var defaultStyle = [components]string{"[", "]", "#", " "}

// rune count of a format string accepted by WithFormat
const formatLen = 4

type component struct {
	width int
	bytes []byte
}

// frameWriter assembles the "[<filled><empty>] (NNN%)" line. The buffer
// returned by frame is valid until the next call.
type frameWriter struct {
	components [components]component
	buf        bytes.Buffer
}

func newFrameWriter(style [components]string) *frameWriter {
	fw := new(frameWriter)
	for i, s := range style {
		fw.components[i] = component{
			width: runewidth.StringWidth(s),
			bytes: []byte(s),
		}
	}
	return fw
}

// frame renders the bar line for current out of total over width glyph
// cells. Filled cells are round(percentage*width), the rest is padding,
// so filled plus padding always equal width. The percentage field is
// right aligned to three digits, which keeps line length constant across
// redraws for a fixed width.
func (fw *frameWriter) frame(total, current, width uint) []byte {
	fw.buf.Reset()
	fw.buf.Write(fw.components[iLbound].bytes)

	curWidth := int(internal.PercentageRound(total, current, width))
	var fillCount int
	for curWidth-fillCount >= fw.components[iFiller].width {
		fw.buf.Write(fw.components[iFiller].bytes)
		fillCount += fw.components[iFiller].width
	}
	for int(width)-fillCount >= fw.components[iPadding].width {
		fw.buf.Write(fw.components[iPadding].bytes)
		fillCount += fw.components[iPadding].width
	}
	if int(width)-fillCount != 0 {
		fw.buf.WriteString("…")
	}

	fw.buf.Write(fw.components[iRbound].bytes)
	fmt.Fprintf(&fw.buf, " (%3d%%)", internal.PercentageRound(total, current, 100))
	return fw.buf.Bytes()
}

func (fw *frameWriter) appendDecor(d decor.Decorator, stat decor.Statistics) []byte {
	fw.buf.WriteByte(' ')
	fw.buf.WriteString(d.Decor(stat))
	return fw.buf.Bytes()
}
