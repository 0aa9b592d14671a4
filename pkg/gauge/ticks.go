package gauge

import errs "github.com/matzehuels/speedo/pkg/errors"

// Tick is one scale label position.
type Tick struct {
	Value int     // label value
	Angle float64 // degrees from the zero end
}

// TickStep returns the integer spacing between ticks: max/10, at least 1.
func TickStep(max int) int {
	if step := max / 10; step > 1 {
		return step
	}
	return 1
}

// BuildTicks lays out scale labels from 0 to max in TickStep increments.
//
// The set always starts at (0, 0°) and ends at (max, 180°). When max is not
// a multiple of the step, max is appended; the last regular tick is dropped
// if it sits within half a step of max so the two labels cannot collide.
func BuildTicks(max int) ([]Tick, error) {
	if max <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidScale, "max must be positive, got %d", max)
	}

	step := TickStep(max)
	ticks := make([]Tick, 0, max/step+2)
	for v := 0; v <= max; v += step {
		ticks = append(ticks, tickAt(v, max))
	}

	if last := ticks[len(ticks)-1].Value; last != max {
		if last > 0 && 2*(max-last) <= step {
			ticks = ticks[:len(ticks)-1]
		}
		ticks = append(ticks, tickAt(max, max))
	}
	return ticks, nil
}

func tickAt(v, max int) Tick {
	return Tick{Value: v, Angle: float64(v) / float64(max) * 180}
}
