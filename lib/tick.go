package fwchart

import "math"

// Nice step multipliers for linear axes, applied at every power of ten.
var linearTicks = []float64{1, 2, 2.5, 5, 10}

// Nice step counts per calendar unit.
var (
	millisecondTicks = []float64{1, 2, 5, 10, 20, 25, 50, 100, 200, 250, 500}
	secondTicks      = []float64{1, 2, 5, 10, 15, 30}
	minuteTicks      = []float64{1, 2, 5, 10, 15, 30}
	hourTicks        = []float64{1, 2, 4, 6, 8, 10, 12}
	dayTicks         = []float64{1, 2, 3, 5}
	weekTicks        = []float64{1, 2, 3}
	monthTicks       = []float64{1, 2, 3, 6}
)

// PickTick returns the candidate closest to rawStep. Ties resolve to
// the earliest candidate in the list, so selection is deterministic
// for any candidate ordering.
func PickTick(candidates []float64, rawStep float64) float64 {
	if len(candidates) == 0 {
		return rawStep
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c-rawStep) < math.Abs(best-rawStep) {
			best = c
		}
	}
	return best
}

// normalize decomposes x into base-10 scientific form so that
// x = mantissa * 10^exponent with mantissa in [1, 10).
func normalize(x float64) (mantissa float64, exponent int) {
	if x == 0 || !isFinite(x) {
		return 0, 0
	}
	exponent = int(math.Floor(math.Log10(math.Abs(x))))
	mantissa = x / math.Pow(10, float64(exponent))
	// Guard against log10 landing on the wrong side of a power of ten.
	if mantissa >= 10 {
		mantissa, exponent = mantissa/10, exponent+1
	} else if mantissa < 1 {
		mantissa, exponent = mantissa*10, exponent-1
	}
	return mantissa, exponent
}

// niceStep selects the nice linear step nearest to rawStep.
func niceStep(rawStep float64) float64 {
	mantissa, exponent := normalize(rawStep)
	return PickTick(linearTicks, mantissa) * math.Pow(10, float64(exponent))
}
