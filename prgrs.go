// Package prgrs decorates iteration over any finite sequence with a
// terminal progress bar, redrawn in place on every pulled element:
//
//	for i := range prgrs.New(seq, 1000).Seq() {
//		// do something here
//	}
//
// The bar owns the current terminal line. Unmediated writes to the same
// stream while the bar is live are out of contract: they corrupt the
// visual output, though never crash. Use Writeln to interleave ordinary
// line output with a live bar.
package prgrs

import (
	"iter"
	"os"
	"time"

	"github.com/prgrs/prgrs/cwriter"
	"github.com/prgrs/prgrs/decor"
)

// Prgrs is a progress decorator over a finite sequence. Consuming it is
// destructive, same as the wrapped sequence; it is not restartable.
type Prgrs[T any] struct {
	next       func() (T, bool)
	stop       func()
	total      uint
	current    uint
	cw         *cwriter.Writer
	fw         *frameWriter
	length     Length
	barWidth   uint
	decorators []decor.Decorator
	ewmas      []decor.EwmaDecorator
	lastPull   time.Time
	done       bool
	err        error
}

// New returns a decorator pulling from seq. The declared total is
// decoupled from the actual sequence length, so callers may estimate:
// the rendered percentage clamps at 100 on overshoot and a zero total
// renders as complete.
func New[T any](seq iter.Seq[T], total uint, options ...Option) *Prgrs[T] {
	next, stop := iter.Pull(seq)
	p := FromNext(next, total, options...)
	p.stop = stop
	return p
}

// FromNext is like New for sources expressed as a pull function: next
// returns the subsequent element, or reports false once the source is
// drained.
func FromNext[T any](next func() (T, bool), total uint, options ...Option) *Prgrs[T] {
	c := newConfig(options...)
	p := &Prgrs[T]{
		next:       next,
		total:      total,
		cw:         cwriter.New(c.out),
		fw:         newFrameWriter(c.style),
		length:     c.length,
		barWidth:   c.barWidth,
		decorators: c.decorators,
	}
	for _, d := range c.decorators {
		if e, ok := d.(decor.EwmaDecorator); ok {
			p.ewmas = append(p.ewmas, e)
		}
	}
	if c.out == os.Stdout {
		setActive(p)
	}
	return p
}

// Next returns the subsequent element of the wrapped sequence. Every
// successful pull advances the bar by one and redraws it; the element is
// returned untouched. Once the sequence is drained Next reports false,
// the bar line is committed to scrollback with a final newline and the
// decorator never renders again.
func (p *Prgrs[T]) Next() (T, bool) {
	var zero T
	if p.done {
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.finish()
		return zero, false
	}
	p.current++
	p.render()
	return v, true
}

// Seq bridges the decorator into a range over func loop. A terminal
// write failure does not interrupt the loop, check Err once it is done.
func (p *Prgrs[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := p.Next(); ok; v, ok = p.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first terminal write failure observed while rendering.
// Elements are still delivered after a failure, redrawing stops. Whether
// a write failure mid iteration is fatal is the caller's decision.
func (p *Prgrs[T]) Err() error {
	return p.err
}

// Current returns the number of elements pulled so far.
func (p *Prgrs[T]) Current() uint {
	return p.current
}

// Writeln prints text as a permanent line of scrollback: the bar line is
// erased first, text terminated by a newline is written in its place and
// the bar is redrawn fresh on the new current line. Text and bar never
// share a line in the output stream. With no bar on screen it degrades
// to a plain line write.
func (p *Prgrs[T]) Writeln(text string) error {
	live := p.cw.LineLive()
	if err := p.cw.Writeln(text); err != nil {
		return err
	}
	if !live || p.done || p.err != nil {
		return nil
	}
	return p.cw.RenderFrame(p.frame())
}

// render redraws the bar after a pull, feeding ewma decorators with the
// time elapsed since the previous pull. The first write failure is
// latched and suppresses any further rendering.
func (p *Prgrs[T]) render() {
	if p.err != nil {
		return
	}
	now := time.Now()
	if !p.lastPull.IsZero() {
		for _, e := range p.ewmas {
			e.EwmaUpdate(now.Sub(p.lastPull))
		}
	}
	p.lastPull = now
	if err := p.cw.RenderFrame(p.frame()); err != nil {
		p.err = err
	}
}

func (p *Prgrs[T]) frame() []byte {
	width := p.barWidth
	if width == 0 {
		width = p.length.barWidth(p.cw)
	}
	frame := p.fw.frame(p.total, p.current, width)
	if len(p.decorators) != 0 {
		stat := decor.Statistics{
			Total:     p.total,
			Current:   p.current,
			Completed: p.done || p.current >= p.total,
		}
		for _, d := range p.decorators {
			frame = p.fw.appendDecor(d, stat)
		}
	}
	return frame
}

func (p *Prgrs[T]) finish() {
	p.done = true
	if p.stop != nil {
		p.stop()
	}
	clearActive(p)
	if p.err == nil {
		if err := p.cw.Finish(); err != nil {
			p.err = err
		}
	}
}
