/*
Package decor contains optional decorators rendered after the bar frame of
"github.com/prgrs/prgrs" package.

Some decorators returned by this package might have a closure state. Create
a new decorator per decorated sequence, don't share:

	Don't:

	 eta := decor.EwmaETA(0)
	 a := prgrs.New(seqA, 100, prgrs.AppendDecorators(eta))
	 b := prgrs.New(seqB, 100, prgrs.AppendDecorators(eta))

	Do:

	 a := prgrs.New(seqA, 100, prgrs.AppendDecorators(decor.EwmaETA(0)))
	 b := prgrs.New(seqB, 100, prgrs.AppendDecorators(decor.EwmaETA(0)))
*/
package decor
