package decor

// Name returns name decorator.
//
//	`name` string to display
//
//	`wcc` optional WC config
func Name(name string, wcc ...WC) Decorator {
	wc := initWC(wcc...)
	return DecorFunc(func(Statistics) string {
		return wc.FormatMsg(name)
	})
}
