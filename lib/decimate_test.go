package fwchart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestDecimate_SingleColumn(t *testing.T) {
	t.Parallel()

	series := Series{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: -3}, {X: 3, Y: 2}}
	x := NewAxis(BuildLinear(0, 3, 1, false, false), 1)
	y := NewAxis(BuildLinear(-3, 5, 5, false, false), 100)

	points := Decimate(series, x, y)

	// One column keeps the first sample, the interior extremes in
	// positional order, and the last sample.
	var ys []float64
	for _, p := range points {
		ys = append(ys, p.Y)
	}
	if diff := cmp.Diff([]float64{0, 5, -3, 2}, ys); diff != "" {
		t.Fatal(diff)
	}
	for i, p := range points {
		if p.IsArtifact {
			t.Errorf("point %d: unexpected artifact", i)
		}
	}
}

func TestDecimate_ShortColumnOmitsDuplicates(t *testing.T) {
	t.Parallel()

	// Two samples in a column emit exactly two points: the extremes
	// coincide with first and last.
	series := Series{{X: 0, Y: 1}, {X: 3, Y: 4}}
	x := NewAxis(BuildLinear(0, 3, 1, false, false), 1)
	y := NewAxis(BuildLinear(0, 5, 5, false, false), 100)

	if got := Decimate(series, x, y); len(got) != 2 {
		t.Errorf("points: got %d, want 2", len(got))
	}

	// A single sample emits a single point.
	series = Series{{X: 1, Y: 1}}
	x = NewAxis(BuildLinear(0, 3, 1, false, false), 1)
	if got := Decimate(series, x, y); len(got) != 1 {
		t.Errorf("points: got %d, want 1", len(got))
	}
}

func TestDecimate_EdgeArtifacts(t *testing.T) {
	t.Parallel()

	// The zoomed domain [2, 8] cuts through the segment between the
	// only two samples: both edges get interpolated artifact points.
	series := Series{{X: 0, Y: 0}, {X: 10, Y: 10}}
	x := NewAxis(BuildLinear(2, 8, 3, false, false), 4)
	y := NewAxis(BuildLinear(0, 10, 5, false, false), 100)

	points := Decimate(series, x, y)
	if len(points) != 2 {
		t.Fatalf("points: got %d, want 2: %+v", len(points), points)
	}

	lo, hi := points[0], points[1]
	if !lo.IsArtifact || !hi.IsArtifact {
		t.Errorf("artifacts: got %v, %v, want true, true", lo.IsArtifact, hi.IsArtifact)
	}
	// Linear interpolation between (0,0) and (10,10).
	if lo.X != 2 || math.Abs(lo.Y-2) > 1e-9 {
		t.Errorf("low edge: got (%v, %v), want (2, 2)", lo.X, lo.Y)
	}
	if hi.X != 8 || math.Abs(hi.Y-8) > 1e-9 {
		t.Errorf("high edge: got (%v, %v), want (8, 8)", hi.X, hi.Y)
	}
	if lo.PixelX != 0 || hi.PixelX != x.Length {
		t.Errorf("edge pixels: got %v, %v, want 0, %v", lo.PixelX, hi.PixelX, x.Length)
	}
}

func TestDecimate_NoArtifactOnExactSample(t *testing.T) {
	t.Parallel()

	// A sample sitting exactly on the domain edge needs no synthetic
	// companion.
	series := Series{{X: 2, Y: 1}, {X: 5, Y: 2}, {X: 8, Y: 3}}
	x := NewAxis(BuildLinear(2, 8, 3, false, false), 4)
	y := NewAxis(BuildLinear(0, 5, 5, false, false), 100)

	for _, p := range Decimate(series, x, y) {
		if p.IsArtifact {
			t.Errorf("unexpected artifact at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestDecimate_SkipsNonFinite(t *testing.T) {
	t.Parallel()

	series := Series{
		{X: 0, Y: 1},
		{X: 1, Y: math.NaN()},
		{X: 2, Y: math.Inf(1)},
		{X: 3, Y: 4},
	}
	x := NewAxis(BuildLinear(0, 3, 1, false, false), 1)
	y := NewAxis(BuildLinear(0, 5, 5, false, false), 100)

	points := Decimate(series, x, y)
	for _, p := range points {
		if !isFinite(p.Y) {
			t.Errorf("non-finite point (%v, %v)", p.X, p.Y)
		}
	}
	if got, want := len(points), 2; got != want {
		t.Errorf("points: got %d, want %d", got, want)
	}
}

func TestDecimate_Empty(t *testing.T) {
	t.Parallel()

	y := NewAxis(BuildLinear(0, 5, 5, false, false), 100)

	if got := Decimate(nil, NewAxis(BuildLinear(0, 3, 1, false, false), 1), y); len(got) != 0 {
		t.Errorf("nil series: got %v, want none", got)
	}
	if got := Decimate(Series{{X: 1, Y: 1}}, NewAxis(Range{}, 10), y); len(got) != 0 {
		t.Errorf("empty range: got %v, want none", got)
	}
}

func TestDecimate_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 500).Draw(t, "n")
		width := rapid.IntRange(1, 64).Draw(t, "width")

		series := make(Series, n)
		for i := range series {
			series[i] = Sample{
				X: rapid.Float64Range(0, 1000).Draw(t, "x"),
				Y: rapid.Float64Range(-1000, 1000).Draw(t, "y"),
			}
		}
		series.Sort()

		dx, dy := series.Extent()
		x := NewAxis(BuildLinear(dx.Min, dx.Max, 5, false, false), float64(width))
		y := NewAxis(BuildLinear(dy.Min, dy.Max, 5, false, false), 100)

		points := Decimate(series, x, y)

		// At most four points per pixel column plus the two edges.
		if limit := 4*width + 2; len(points) > limit {
			t.Fatalf("points: got %d, want <= %d", len(points), limit)
		}

		// The full-extent domain never needs artifacts and preserves
		// the series extremes.
		ymin, ymax := math.Inf(1), math.Inf(-1)
		for _, p := range points {
			if p.IsArtifact {
				t.Fatalf("unexpected artifact at (%v, %v)", p.X, p.Y)
			}
			ymin = math.Min(ymin, p.Y)
			ymax = math.Max(ymax, p.Y)
		}
		if len(points) == 0 {
			t.Fatal("no points")
		}
		if ymin != dy.Min || ymax != dy.Max {
			t.Errorf("extremes: got [%v, %v], want [%v, %v]", ymin, ymax, dy.Min, dy.Max)
		}

		// Every pixel column keeps its own vertical extremes, not
		// just the series-wide ones.
		kept := make(map[Sample]bool, len(points))
		for _, p := range points {
			kept[p.Sample] = true
		}
		for i, col := 0, 0; col < width && i < len(series); col++ {
			hi := x.Value(float64(col + 1))
			last := col == width-1

			lo, cmin, cmax := i, i, i
			for ; i < len(series); i++ {
				s := series[i]
				if s.X > dx.Max || (!last && s.X >= hi) {
					break
				}
				if s.Y < series[cmin].Y {
					cmin = i
				}
				if s.Y > series[cmax].Y {
					cmax = i
				}
			}
			if i-lo < 2 {
				continue
			}
			if !kept[series[cmin]] {
				t.Errorf("column %d dropped its minimum %+v", col, series[cmin])
			}
			if !kept[series[cmax]] {
				t.Errorf("column %d dropped its maximum %+v", col, series[cmax])
			}
		}

		// Pixel positions never regress.
		for i := 1; i < len(points); i++ {
			if points[i].PixelX < points[i-1].PixelX {
				t.Errorf("pixel regression at %d: %v < %v",
					i, points[i].PixelX, points[i-1].PixelX)
			}
		}
	})
}
