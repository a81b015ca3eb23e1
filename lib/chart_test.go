package fwchart

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = Sample{X: float64(i), Y: float64((i * 7) % 23)}
	}
	return s
}

func TestChart_AddSeries(t *testing.T) {
	t.Parallel()

	c := New()
	defer c.Close()

	if err := c.AddSeries("ok", testSeries(10), false); err != nil {
		t.Fatal(err)
	}
	err := c.AddSeries("bad", Series{{X: 2}, {X: 1}}, false)
	if !errors.Is(err, ErrUnsortedSeries) {
		t.Errorf("got %v, want %v", err, ErrUnsortedSeries)
	}
}

func TestChart_Recompute(t *testing.T) {
	t.Parallel()

	c := New(Size(100, 50), Densities(5, 5))
	defer c.Close()

	if err := c.AddSeries("a", testSeries(1000), false); err != nil {
		t.Fatal(err)
	}
	c.Recompute()

	x, y := c.Axes()
	if x == nil || y == nil {
		t.Fatal("axes not computed")
	}
	if got, want := x.Range.Min(), 0.0; got != want {
		t.Errorf("x min: got %v, want %v", got, want)
	}
	if got, want := x.Range.Max(), 999.0; got != want {
		t.Errorf("x max: got %v, want %v", got, want)
	}

	points := c.Points("a")
	if len(points) == 0 {
		t.Fatal("no points")
	}
	if limit := 4*100 + 2; len(points) > limit {
		t.Errorf("points: got %d, want <= %d", len(points), limit)
	}

	// Recomputing unchanged state yields identical output.
	c.Recompute()
	if diff := cmp.Diff(points, c.Points("a")); diff != "" {
		t.Error(diff)
	}
}

func TestChart_RemoveSeries(t *testing.T) {
	t.Parallel()

	c := New()
	defer c.Close()

	if err := c.AddSeries("a", testSeries(10), false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddSeries("b", testSeries(20), false); err != nil {
		t.Fatal(err)
	}
	c.RemoveSeries("a")
	c.Recompute()

	if got := c.Points("a"); got != nil {
		t.Errorf("removed series points: got %v", got)
	}
	if got := c.Points("b"); len(got) == 0 {
		t.Error("remaining series has no points")
	}
}

func TestChart_DomainHint(t *testing.T) {
	t.Parallel()

	c := New(Size(100, 50))
	defer c.Close()

	if err := c.AddSeries("a", testSeries(1000), false); err != nil {
		t.Fatal(err)
	}

	c.SetDomainHint(Domain{Min: 100, Max: 200})
	c.Recompute()
	x, _ := c.Axes()
	if got, want := x.Range.Min(), 100.0; got != want {
		t.Errorf("hinted x min: got %v, want %v", got, want)
	}
	if got, want := x.Range.Max(), 200.0; got != want {
		t.Errorf("hinted x max: got %v, want %v", got, want)
	}

	// An inverted hint degrades to the data extent.
	c.SetDomainHint(Domain{Min: 500, Max: 100})
	c.Recompute()
	x, _ = c.Axes()
	if got, want := x.Range.Min(), 0.0; got != want {
		t.Errorf("degraded x min: got %v, want %v", got, want)
	}

	// A half-open hint keeps the other bound from the data.
	c.SetDomainHint(Domain{Min: 500, Max: math.NaN()})
	c.Recompute()
	x, _ = c.Axes()
	if got, want := x.Range.Min(), 500.0; got != want {
		t.Errorf("half-open x min: got %v, want %v", got, want)
	}
	if got, want := x.Range.Max(), 999.0; got != want {
		t.Errorf("half-open x max: got %v, want %v", got, want)
	}
}

func TestChart_TimeAxis(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, 100)
	for i := range s {
		s[i] = Sample{X: float64(base.Add(time.Duration(i) * time.Minute).UnixMilli()), Y: float64(i)}
	}

	c := New(Size(200, 100))
	defer c.Close()
	if err := c.AddSeries("latency", s, true); err != nil {
		t.Fatal(err)
	}
	c.Recompute()

	x, _ := c.Axes()
	if len(x.Range.Ticks()) == 0 {
		t.Fatal("no x ticks")
	}
	// Calendar ticks carry multi-line labels.
	if got := x.Range.Ticks()[0].Labels; len(got) < 2 {
		t.Errorf("tick labels: got %v, want context lines", got)
	}

	// A mix of timestamped and plain series falls back to a linear
	// x axis.
	if err := c.AddSeries("plain", testSeries(10), false); err != nil {
		t.Fatal(err)
	}
	c.Recompute()
	x, _ = c.Axes()
	if got := x.Range.Ticks()[0].Labels; len(got) != 1 {
		t.Errorf("mixed axis labels: got %v, want plain values", got)
	}
}

func TestChart_QueryTooltip(t *testing.T) {
	t.Parallel()

	c := New(Size(100, 50))
	defer c.Close()

	if err := c.AddSeries("a", testSeries(50), false); err != nil {
		t.Fatal(err)
	}
	c.Recompute()

	points := c.Points("a")
	if len(points) == 0 {
		t.Fatal("no points")
	}
	target := points[len(points)/2]

	name, p := c.QueryTooltip(int(target.PixelX), int(target.PixelY), 2)
	if p == nil {
		t.Fatal("no tooltip hit")
	}
	if name != "a" {
		t.Errorf("series: got %q, want %q", name, "a")
	}

	if name, p := c.QueryTooltip(-100, -100, 2); p != nil {
		t.Errorf("miss: got %q, %+v", name, p)
	}
}

func TestChart_TooltipLines(t *testing.T) {
	t.Parallel()

	c := New()
	defer c.Close()

	if err := c.AddSeries("plain", testSeries(10), false); err != nil {
		t.Fatal(err)
	}
	ts := Series{{X: float64(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli()), Y: 1}}
	if err := c.AddSeries("timed", ts, true); err != nil {
		t.Fatal(err)
	}
	c.SetFormatter("bytes", ByteFormatter())

	p := Point{Sample: Sample{X: 2, Y: 3}}
	if diff := cmp.Diff([]string{"2", "3"}, c.TooltipLines("plain", p)); diff != "" {
		t.Error(diff)
	}

	tp := Point{Sample: ts[0]}
	if got := c.TooltipLines("timed", tp); got[0] != "2024-06-01 12:00:00.000" {
		t.Errorf("timed lines: got %v", got)
	}

	bp := Point{Sample: Sample{X: 1, Y: 2048}}
	if got := c.TooltipLines("bytes", bp); got[1] != "2.0 KB" {
		t.Errorf("bytes lines: got %v", got)
	}
}

type captureObserver struct {
	mu    sync.Mutex
	stats []RecomputeStats
}

func (o *captureObserver) Observe(s RecomputeStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stats = append(o.stats, s)
}

func (o *captureObserver) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.stats)
}

func TestChart_Observer(t *testing.T) {
	t.Parallel()

	obs := &captureObserver{}
	c := New(Size(100, 50), WithObserver(obs))
	defer c.Close()

	if err := c.AddSeries("a", testSeries(100), false); err != nil {
		t.Fatal(err)
	}
	c.Recompute()

	if got, want := obs.len(), 1; got != want {
		t.Fatalf("observations: got %d, want %d", got, want)
	}
	s := obs.stats[0]
	if s.Series != 1 || s.SamplesIn != 100 || s.PointsOut == 0 {
		t.Errorf("stats: got %+v", s)
	}
}

func TestChart_RequestRecompute(t *testing.T) {
	t.Parallel()

	obs := &captureObserver{}
	c := New(Size(100, 50), WithObserver(obs))
	defer c.Close()

	if err := c.AddSeries("a", testSeries(100), false); err != nil {
		t.Fatal(err)
	}
	c.RequestRecompute()

	deadline := time.Now().Add(5 * time.Second)
	for obs.len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("deferred recompute never ran")
		}
		time.Sleep(time.Millisecond)
	}

	x, y := c.Axes()
	if x == nil || y == nil {
		t.Error("axes not computed")
	}
}
