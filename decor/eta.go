package decor

import (
	"math"
	"time"

	"github.com/VividCortex/ewma"
)

// EwmaETA returns exponential-weighted-moving-average ETA decorator. The
// average is fed one duration sample per pulled element, via EwmaUpdate.
//
//	`age` is the previous N samples to average over.
//	 If zero value provided, it defaults to ewma.AVG_METRIC_AGE.
//
//	`wcc` optional WC config
func EwmaETA(age float64, wcc ...WC) Decorator {
	if age == 0 {
		age = ewma.AVG_METRIC_AGE
	}
	return &ewmaETA{
		wc:       initWC(wcc...),
		mAverage: ewma.NewMovingAverage(age),
	}
}

type ewmaETA struct {
	wc       WC
	mAverage ewma.MovingAverage
}

func (d *ewmaETA) Decor(s Statistics) string {
	if s.Completed || s.Current >= s.Total {
		return d.wc.FormatMsg("0s")
	}
	remaining := time.Duration(s.Total-s.Current) * time.Duration(math.Round(d.mAverage.Value()))
	// drop sub second precision to keep the column calm
	str := (time.Duration(remaining.Seconds()) * time.Second).String()
	return d.wc.FormatMsg(str)
}

func (d *ewmaETA) EwmaUpdate(dur time.Duration) {
	d.mAverage.Add(float64(dur))
}
