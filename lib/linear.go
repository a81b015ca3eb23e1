package fwchart

import "math"

// tickEps absorbs float noise when deciding whether a domain bound
// lands exactly on a tick.
const tickEps = 1e-9

// BuildLinear partitions the numeric domain [min, max] into weighted
// segments bounded by nice tick values, targeting density ticks.
//
// In extended mode ticks cover the full step grid enclosing the
// domain and every segment has weight 1. Otherwise segments are
// clipped to the domain and a boundary not landing on a tick yields a
// truncated edge segment whose weight is the fraction of a full step
// it covers.
//
// onlyInteger widens the domain to integer bounds before step
// selection. A NaN bound yields the empty Range (no axis) and
// min == max yields the single-point Range.
func BuildLinear(min, max float64, density int, extended, onlyInteger bool) Range {
	if math.IsNaN(min) || math.IsNaN(max) {
		return Range{}
	}
	if density < 1 {
		density = 1
	}
	if onlyInteger {
		min, max = math.Floor(min), math.Ceil(max)
	}
	if min == max {
		t := Tick{Value: min, Labels: []string{formatValue(min)}}
		return Range{Single: &t}
	}

	step := niceStep((max - min) / float64(density))
	if extended {
		return extendedRange(min, max, step)
	}
	return truncatedRange(min, max, step)
}

func tickAt(i int64, step float64) Tick {
	v := float64(i) * step
	return Tick{Value: v, Labels: []string{formatValue(v)}}
}

func extendedRange(min, max, step float64) Range {
	i0 := int64(math.Floor(min/step + tickEps))
	i1 := int64(math.Ceil(max/step - tickEps))
	if i1 <= i0 {
		i1 = i0 + 1
	}

	segs := make([]Segment, 0, i1-i0)
	for i := i0; i < i1; i++ {
		lo, hi := tickAt(i, step), tickAt(i+1, step)
		segs = append(segs, Segment{Min: lo, Max: hi, Size: hi.Value - lo.Value, Weight: 1})
	}
	return Range{Segments: segs}
}

func truncatedRange(min, max, step float64) Range {
	i0 := int64(math.Ceil(min/step - tickEps))
	i1 := int64(math.Floor(max/step + tickEps))

	if i0 > i1 {
		// The domain is narrower than one step and holds no tick.
		return Range{Segments: []Segment{{
			Min:    Tick{Value: min},
			Max:    Tick{Value: max},
			Size:   max - min,
			Weight: (max - min) / step,
		}}}
	}

	segs := make([]Segment, 0, i1-i0+2)

	if first := tickAt(i0, step); first.Value > min+tickEps*step {
		segs = append(segs, Segment{
			Min:    Tick{Value: min},
			Max:    first,
			Size:   first.Value - min,
			Weight: (first.Value - min) / step,
		})
	}

	for i := i0; i < i1; i++ {
		lo, hi := tickAt(i, step), tickAt(i+1, step)
		segs = append(segs, Segment{Min: lo, Max: hi, Size: hi.Value - lo.Value, Weight: 1})
	}

	if last := tickAt(i1, step); last.Value < max-tickEps*step {
		segs = append(segs, Segment{
			Min:    last,
			Max:    Tick{Value: max},
			Size:   max - last.Value,
			Weight: (max - last.Value) / step,
		})
	}

	return Range{Segments: segs}
}
