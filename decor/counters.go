package decor

import "fmt"

// CountersNoUnit returns raw counters decorator.
//
//	`pairFmt` printf compatible verbs for current and total pair,
//	 e.g. "%d/%d". If empty, "%d/%d" is used.
//
//	`wcc` optional WC config
func CountersNoUnit(pairFmt string, wcc ...WC) Decorator {
	wc := initWC(wcc...)
	if pairFmt == "" {
		pairFmt = "%d/%d"
	}
	return DecorFunc(func(s Statistics) string {
		return wc.FormatMsg(fmt.Sprintf(pairFmt, s.Current, s.Total))
	})
}
