package prgrs

import (
	"fmt"
	"os"
)

type lineWriter interface {
	Writeln(string) error
}

// last stdout bound decorator, routes package level Writeln calls
var activeBar lineWriter

func setActive(p lineWriter) {
	activeBar = p
}

func clearActive(p lineWriter) {
	if activeBar == p {
		activeBar = nil
	}
}

// Writeln writes text as a permanent line to stdout without corrupting a
// live bar: the bar line is erased, text terminated by a newline takes
// its place and the bar is redrawn fresh below. With no active decorator
// it degrades to a plain line write.
func Writeln(text string) error {
	if activeBar != nil {
		return activeBar.Writeln(text)
	}
	_, err := fmt.Fprintln(os.Stdout, text)
	return err
}
