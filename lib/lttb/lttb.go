// Package lttb implements Largest-Triangle-Three-Buckets downsampling
// of line chart points, described in:
// https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
package lttb

import "errors"

// A Point in a line chart.
type Point struct{ X, Y float64 }

var errMinThreshold = errors.New("lttb: min threshold is 3")

// Downsample reduces data to at most threshold points while
// maintaining close visual similarity to the original line. The first
// and last points are always kept. A threshold of zero, or one at or
// above the input size, returns the input unmodified.
func Downsample(data []Point, threshold int) ([]Point, error) {
	if threshold == 0 || threshold >= len(data) {
		return data, nil
	}
	if threshold < 3 {
		return nil, errMinThreshold
	}

	// Bucket size, leaving room for the start and end points.
	size := float64(len(data)-2) / float64(threshold-2)

	samples := make([]Point, 0, threshold)
	samples = append(samples, data[0])

	for i := 0; i < threshold-2; i++ {
		lo := int(float64(i)*size) + 1
		hi := int(float64(i+1)*size) + 1
		end := int(float64(i+2)*size) + 1
		if end > len(data)-1 {
			end = len(data) - 1
		}
		samples = append(samples, sample(samples[len(samples)-1], data[lo:hi], data[hi:end], data[len(data)-1]))
	}

	return append(samples, data[len(data)-1]), nil
}

// sample picks the point of the current bucket that forms the largest
// triangle with the previously kept point a and the average point of
// the next bucket.
func sample(a Point, current, next []Point, last Point) Point {
	c := last
	if len(next) > 0 {
		c = Point{}
		for _, p := range next {
			c.X, c.Y = c.X+p.X, c.Y+p.Y
		}
		n := float64(len(next))
		c.X, c.Y = c.X/n, c.Y/n
	}

	var largest float64
	var index int
	for i, p := range current {
		area := (a.X-c.X)*(p.Y-a.Y) - (a.X-p.X)*(c.Y-a.Y)
		// Only the relative area matters; squaring beats math.Abs.
		if area *= area; area > largest {
			largest, index = area, i
		}
	}

	return current[index]
}
