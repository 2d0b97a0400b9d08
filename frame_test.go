package prgrs

import (
	"strings"
	"testing"
)

func TestFrame(t *testing.T) {
	// key is barWidth
	testSuite := map[uint][]struct {
		name           string
		total, current uint
		want           string
	}{
		4: {
			{
				name:  "t,c{100,0}",
				total: 100,
				want:  "[    ] (  0%)",
			},
			{
				name:    "t,c{100,50}",
				total:   100,
				current: 50,
				want:    "[##  ] ( 50%)",
			},
			{
				name:    "t,c{100,100}",
				total:   100,
				current: 100,
				want:    "[####] (100%)",
			},
			{
				name:    "t,c{8,1}",
				total:   8,
				current: 1,
				want:    "[#   ] ( 13%)",
			},
		},
		36: {
			{
				name:    "t,c{1000,10}",
				total:   1000,
				current: 10,
				want:    "[" + strings.Repeat(" ", 36) + "] (  1%)",
			},
			{
				name:    "t,c{1000,15}",
				total:   1000,
				current: 15,
				want:    "[#" + strings.Repeat(" ", 35) + "] (  2%)",
			},
			{
				name:    "t,c{1000,1000}",
				total:   1000,
				current: 1000,
				want:    "[" + strings.Repeat("#", 36) + "] (100%)",
			},
		},
		1: {
			{
				name:  "t,c{60,0}",
				total: 60,
				want:  "[ ] (  0%)",
			},
			{
				name:    "t,c{60,60}",
				total:   60,
				current: 60,
				want:    "[#] (100%)",
			},
		},
	}

	for barWidth, cases := range testSuite {
		fw := newFrameWriter(defaultStyle)
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := string(fw.frame(tc.total, tc.current, barWidth))
				if got != tc.want {
					t.Fatalf("want %q, got %q", tc.want, got)
				}
			})
		}
	}
}

func TestFrameZeroTotal(t *testing.T) {
	fw := newFrameWriter(defaultStyle)
	want := "[####] (100%)"
	for _, current := range []uint{0, 1, 42} {
		got := string(fw.frame(0, current, 4))
		if got != want {
			t.Fatalf("current %d: want %q, got %q", current, want, got)
		}
	}
}

func TestFrameOvershootClamps(t *testing.T) {
	fw := newFrameWriter(defaultStyle)
	want := "[####] (100%)"
	got := string(fw.frame(5, 8, 4))
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFrameStableWidth(t *testing.T) {
	const barWidth = 10
	fw := newFrameWriter(defaultStyle)
	want := len(fw.frame(100, 0, barWidth))
	for current := uint(1); current <= 100; current++ {
		frame := fw.frame(100, current, barWidth)
		if len(frame) != want {
			t.Fatalf("current %d: length %d, want %d: %q", current, len(frame), want, frame)
		}
		glyphs := len(frame) - len("[") - len("] (100%)")
		if glyphs != barWidth {
			t.Fatalf("current %d: %d glyphs, want %d", current, glyphs, barWidth)
		}
	}
}

func TestFrameCustomFormat(t *testing.T) {
	c := newConfig(WithFormat("(=.)"))
	fw := newFrameWriter(c.style)
	want := "(==..) ( 50%)"
	got := string(fw.frame(100, 50, 4))
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWithFormatIgnoresBadInput(t *testing.T) {
	cases := map[string]string{
		"wrong rune count":  "[=>-]",
		"empty":             "",
		"zero width filler": "[́ ]",
		"zero width bound":  "​# ]",
	}
	for name, format := range cases {
		t.Run(name, func(t *testing.T) {
			c := newConfig(WithFormat(format))
			if c.style != defaultStyle {
				t.Fatalf("format %q: expected default style, got %v", format, c.style)
			}
			// the fill loops must terminate and render the default glyphs
			fw := newFrameWriter(c.style)
			want := "[##  ] ( 50%)"
			if got := string(fw.frame(100, 50, 4)); got != want {
				t.Fatalf("want %q, got %q", want, got)
			}
		})
	}
}
