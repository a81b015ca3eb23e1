package fwchart

import "math"

// A Point is a decimated, pixel-placed sample. IsArtifact marks a
// synthetic boundary point interpolated at a truncated domain edge
// rather than a real sample.
type Point struct {
	Sample
	PixelX     float64 `json:"pixel_x"`
	PixelY     float64 `json:"pixel_y"`
	IsArtifact bool    `json:"is_artifact,omitempty"`
}

// Decimate reduces the series to at most four representative samples
// per pixel column of the x axis: the first and last sample of the
// column plus its interior minimum and maximum, emitted in positional
// order so the drawn line stays visually monotonic. Samples with
// non-finite coordinates are skipped.
//
// When a domain edge falls strictly inside the series, a synthetic
// interpolated point is added at the edge so the rendered line
// terminates exactly on it. The series must be ordered ascending by
// X; the scan is a single forward pass shared by all columns.
func Decimate(series Series, x, y *Axis) []Point {
	width := int(math.Round(x.Length))
	if width < 1 || x.Range.Empty() {
		return nil
	}

	dmin, dmax := x.Range.Min(), x.Range.Max()
	points := make([]Point, 0, 64)

	if p, ok := interpolateAt(series, dmin); ok {
		points = append(points, placeArtifact(p, x, y))
	}

	i := 0
	// Skip samples before the domain.
	for i < len(series) && (series[i].X < dmin || !finiteSample(series[i])) {
		i++
	}

	for col := 0; col < width && i < len(series); col++ {
		hi := x.Value(float64(col + 1))
		last := col == width-1

		first, end, min, max := -1, -1, -1, -1
		for ; i < len(series); i++ {
			s := series[i]
			if !finiteSample(s) {
				continue
			}
			if s.X > dmax || (!last && s.X >= hi) {
				break
			}
			if first == -1 {
				first, end, min, max = i, i, i, i
				continue
			}
			end = i
			if s.Y < series[min].Y {
				min = i
			}
			if s.Y > series[max].Y {
				max = i
			}
		}
		if first == -1 {
			continue
		}

		points = append(points, place(series[first], x, y))
		a, b := min, max
		if a > b {
			a, b = b, a
		}
		if a != first && a != end {
			points = append(points, place(series[a], x, y))
		}
		if b != a && b != first && b != end {
			points = append(points, place(series[b], x, y))
		}
		if end != first {
			points = append(points, place(series[end], x, y))
		}
	}

	if p, ok := interpolateAt(series, dmax); ok {
		points = append(points, placeArtifact(p, x, y))
	}

	return points
}

func place(s Sample, x, y *Axis) Point {
	p := Point{Sample: s}
	p.PixelX = x.Pixel(s.X)
	p.PixelY = y.Pixel(s.Y)
	return p
}

func finiteSample(s Sample) bool { return isFinite(s.X) && isFinite(s.Y) }

// interpolateAt synthesizes the artifact sample at xv when xv falls
// strictly between two consecutive finite samples. A sample landing
// exactly on xv needs no artifact.
func interpolateAt(series Series, xv float64) (Sample, bool) {
	prev := -1
	for i, s := range series {
		if !finiteSample(s) {
			continue
		}
		if s.X == xv {
			return Sample{}, false
		}
		if s.X > xv {
			if prev == -1 {
				return Sample{}, false
			}
			a, b := series[prev], s
			t := (xv - a.X) / (b.X - a.X)
			p := Sample{X: xv, Y: a.Y + t*(b.Y-a.Y)}
			return p, true
		}
		prev = i
	}
	return Sample{}, false
}

// placeArtifact marks and places an interpolated edge sample.
func placeArtifact(s Sample, x, y *Axis) Point {
	p := place(s, x, y)
	p.IsArtifact = true
	return p
}
