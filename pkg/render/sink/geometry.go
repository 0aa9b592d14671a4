package sink

import (
	"math"

	"github.com/matzehuels/speedo/pkg/gauge"
)

// span bounds an arc to at most one full turn.
func span(a gauge.Arc) (start, end float64) {
	sweep := math.Max(-360, math.Min(360, a.Sweep()))
	return a.Start, a.Start + sweep
}

// screenRange returns the arc's screen angles in increasing order.
func screenRange(f gauge.Frame, a gauge.Arc) (lo, hi float64, ok bool) {
	start, end := span(a)
	if start == end {
		return 0, 0, false
	}
	lo, hi = f.ScreenAngle(start), f.ScreenAngle(end)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
