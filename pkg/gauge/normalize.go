package gauge

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

// ClampPolicy decides what happens to readings outside [0, Max].
type ClampPolicy int

const (
	// ClampRange pins readings into [0, Max], so angles stay in [0°, 180°].
	ClampRange ClampPolicy = iota
	// ClampOverflow keeps the raw ratio; angles may leave [0°, 180°].
	ClampOverflow
)

// Overflow angles are bounded to one full turn past either end.
const (
	minOverflowAngle = -360.0
	maxOverflowAngle = 540.0
)

// String returns the flag/config name of the policy.
func (p ClampPolicy) String() string {
	switch p {
	case ClampRange:
		return "clamp"
	case ClampOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("ClampPolicy(%d)", int(p))
	}
}

// ParseClampPolicy parses "clamp" or "overflow". Empty selects ClampRange.
func ParseClampPolicy(s string) (ClampPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return ClampRange, nil
	case "overflow":
		return ClampOverflow, nil
	}
	return ClampRange, errs.New(errs.ErrCodeInvalidInput, "invalid clamp policy: %q (must be 'clamp' or 'overflow')", s)
}

// Normalize maps value onto the arc: value/max*180 degrees.
//
// max must be positive. NaN readings map to 0°. Infinite readings map to the
// matching end of the range permitted by policy.
func Normalize(value float64, max int, policy ClampPolicy) (float64, error) {
	if max <= 0 {
		return 0, errs.New(errs.ErrCodeInvalidScale, "max must be positive, got %d", max)
	}
	if math.IsNaN(value) {
		return 0, nil
	}

	ratio := value / float64(max)
	if policy == ClampOverflow {
		return math.Max(minOverflowAngle, math.Min(maxOverflowAngle, ratio*180)), nil
	}
	return math.Max(0, math.Min(1, ratio)) * 180, nil
}
