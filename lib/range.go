package fwchart

import (
	"math"
	"strconv"
)

// A Tick is a labeled boundary value on an axis. Labels holds the
// display lines of the tick, top to bottom; it is empty for synthetic
// boundary ticks introduced by domain truncation.
type Tick struct {
	Value  float64
	Labels []string
}

// A Segment is the sub-interval of a domain between two adjacent
// ticks. Weight is 1 for interior segments and the covered fraction
// of a full step for segments truncated by the domain boundary.
type Segment struct {
	Min    Tick
	Max    Tick
	Size   float64
	Weight float64
}

// A Range is an ordered, contiguous list of weighted axis segments.
// A Range with no Segments and a non-nil Single is a single-point
// axis: the caller centers one tick. A zero Range means no axis.
type Range struct {
	Segments []Segment
	Single   *Tick
}

// Empty reports whether the range describes no axis at all.
func (r Range) Empty() bool { return len(r.Segments) == 0 && r.Single == nil }

// Min returns the lowest covered value.
func (r Range) Min() float64 {
	if r.Single != nil {
		return r.Single.Value
	}
	if len(r.Segments) == 0 {
		return math.NaN()
	}
	return r.Segments[0].Min.Value
}

// Max returns the highest covered value.
func (r Range) Max() float64 {
	if r.Single != nil {
		return r.Single.Value
	}
	if len(r.Segments) == 0 {
		return math.NaN()
	}
	return r.Segments[len(r.Segments)-1].Max.Value
}

// Ticks returns the labeled boundary values of the range in order,
// including the single-point tick for degenerate ranges. Synthetic
// unlabeled boundaries are skipped.
func (r Range) Ticks() []Tick {
	if r.Single != nil {
		return []Tick{*r.Single}
	}
	ticks := make([]Tick, 0, len(r.Segments)+1)
	for i, seg := range r.Segments {
		if i == 0 && len(seg.Min.Labels) > 0 {
			ticks = append(ticks, seg.Min)
		}
		if len(seg.Max.Labels) > 0 {
			ticks = append(ticks, seg.Max)
		}
	}
	return ticks
}

// formatValue renders a tick value, rounding away float noise
// accumulated by repeated stepping.
func formatValue(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-9*math.Max(1, math.Abs(v)) {
		v = r
	} else {
		v = math.Round(v*1e12) / 1e12
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
