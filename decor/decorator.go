package decor

import (
	"fmt"
	"time"
)

// Statistics is a snapshot of bar state, which gets passed to a Decorator.
type Statistics struct {
	Total     uint
	Current   uint
	Completed bool
}

// Decorator is an interface with one method:
//
//	Decor(Statistics) string
//
// All decorators in this package implement this interface.
type Decorator interface {
	Decor(Statistics) string
}

// DecorFunc is an adapter for Decorator interface.
type DecorFunc func(Statistics) string

func (f DecorFunc) Decor(s Statistics) string {
	return f(s)
}

// EwmaDecorator interface. Decorators implementing this interface receive
// one duration sample per pulled element.
type EwmaDecorator interface {
	EwmaUpdate(time.Duration)
}

// WC is a width config with two public fields W and Left. W is the
// minimal rendered width, pad direction is right aligned unless Left.
type WC struct {
	W    int
	Left bool
}

// FormatMsg formats final message according to WC. Should be called by
// any Decorator implementation.
func (wc WC) FormatMsg(msg string) string {
	if wc.W == 0 {
		return msg
	}
	if wc.Left {
		return fmt.Sprintf(fmt.Sprintf("%%-%ds", wc.W), msg)
	}
	return fmt.Sprintf(fmt.Sprintf("%%%ds", wc.W), msg)
}

func initWC(wcc ...WC) WC {
	var wc WC
	for _, widthConf := range wcc {
		wc = widthConf
	}
	return wc
}
