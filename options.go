package prgrs

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/prgrs/prgrs/decor"
)

// Option is a function option which changes the default behavior of the
// decorator, if passed to New or FromNext.
type Option func(*config)

type config struct {
	out        io.Writer
	style      [components]string
	length     Length
	barWidth   uint
	decorators []decor.Decorator
}

func newConfig(options ...Option) *config {
	c := &config{
		out:    os.Stdout,
		style:  defaultStyle,
		length: Proportional(0.33),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WithOutput overrides default output os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLength overrides the default length Proportional(0.33).
func WithLength(l Length) Option {
	return func(c *config) {
		c.length = l
	}
}

// WithBarWidth pins the bar to exactly cols glyph cells, bypassing
// terminal size resolution. Zero means resolve from the configured
// Length.
func WithBarWidth(cols uint) Option {
	return func(c *config) {
		c.barWidth = cols
	}
}

// WithFormat overrides default bar format "[# ]", in order: left bound,
// filler, padding, right bound. Formats not exactly 4 runes, or holding
// any rune of zero cell width, are ignored and the default is kept.
func WithFormat(format string) Option {
	return func(c *config) {
		if utf8.RuneCountInString(format) != formatLen {
			return
		}
		runes := []rune(format)
		for _, r := range runes {
			if runewidth.RuneWidth(r) < 1 {
				return
			}
		}
		c.style[iLbound] = string(runes[0])
		c.style[iFiller] = string(runes[1])
		c.style[iPadding] = string(runes[2])
		c.style[iRbound] = string(runes[3])
	}
}

// AppendDecorators appends decorators rendered space separated after the
// percentage field.
func AppendDecorators(appenders ...decor.Decorator) Option {
	return func(c *config) {
		for _, d := range appenders {
			if d != nil {
				c.decorators = append(c.decorators, d)
			}
		}
	}
}
