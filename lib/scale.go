package fwchart

import (
	"fmt"
	"sort"
)

// segmentGeometry is the pixel allocation of one range segment.
type segmentGeometry struct {
	offset float64 // cumulative pixel length of prior segments
	length float64 // pixels allotted to this segment
	scale  float64 // pixels per data unit
}

// An Axis maps data values to pixel offsets and back through the
// weighted segments of its Range. Pixel length is distributed across
// segments proportionally to their weights. An Axis is immutable for
// the duration of a render pass.
type Axis struct {
	Range  Range
	Length float64
	geo    []segmentGeometry
}

// NewAxis derives the pixel geometry of the given range. A zero-size
// segment is a range-builder invariant violation and panics.
func NewAxis(r Range, pixelLength float64) *Axis {
	a := &Axis{Range: r, Length: pixelLength}
	if len(r.Segments) == 0 {
		return a
	}

	var total float64
	for _, seg := range r.Segments {
		total += seg.Weight
	}

	a.geo = make([]segmentGeometry, len(r.Segments))
	offset := 0.0
	for i, seg := range r.Segments {
		if seg.Size <= 0 {
			panic(fmt.Sprintf("fwchart: zero-size segment [%v, %v]", seg.Min.Value, seg.Max.Value))
		}
		length := pixelLength * seg.Weight / total
		a.geo[i] = segmentGeometry{offset: offset, length: length, scale: length / seg.Size}
		offset += length
	}
	return a
}

// Pixel converts a data value to a pixel offset on the axis. Values
// outside the range clamp to the axis edges; a single-point axis maps
// everything to the midpoint.
func (a *Axis) Pixel(value float64) float64 {
	segs := a.Range.Segments
	if len(segs) == 0 {
		return a.Length / 2
	}
	if value <= segs[0].Min.Value {
		return 0
	}
	if value >= segs[len(segs)-1].Max.Value {
		return a.Length
	}

	i := sort.Search(len(segs), func(i int) bool { return segs[i].Max.Value >= value })
	g := a.geo[i]
	return g.offset + (value-segs[i].Min.Value)*g.scale
}

// Value converts a pixel offset back to a data value. Out-of-range
// pixels clamp to the nearest axis endpoint value.
func (a *Axis) Value(pixel float64) float64 {
	segs := a.Range.Segments
	if len(segs) == 0 {
		if a.Range.Single != nil {
			return a.Range.Single.Value
		}
		return 0
	}
	if pixel <= 0 {
		return segs[0].Min.Value
	}
	if pixel >= a.Length {
		return segs[len(segs)-1].Max.Value
	}

	i := sort.Search(len(a.geo), func(i int) bool {
		return a.geo[i].offset+a.geo[i].length >= pixel
	})
	g := a.geo[i]
	return segs[i].Min.Value + (pixel-g.offset)/g.scale
}

// SegmentLength returns the pixel length allotted to segment i.
func (a *Axis) SegmentLength(i int) float64 { return a.geo[i].length }
